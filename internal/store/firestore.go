package store

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/stencilcli/stencil/internal/domain"
)

// FirestoreStore keeps blueprints in a Firestore collection, one document
// per blueprint keyed by name, for sharing snapshots across machines. It
// satisfies the same repository interface as the local file store.
type FirestoreStore struct {
	client     *firestore.Client
	fs         domain.FileSystemPort
	collection string
}

// NewFirestoreStore initializes the Firestore client for the given project.
// credentialsFile may be empty, in which case Application Default
// Credentials are used.
func NewFirestoreStore(ctx context.Context, fs domain.FileSystemPort, projectID, credentialsFile string) (*FirestoreStore, error) {
	conf := &firebase.Config{ProjectID: projectID}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("initializing firestore: %w", err)
	}

	return &FirestoreStore{client: client, fs: fs, collection: "blueprints"}, nil
}

// Close releases the underlying client.
func (s *FirestoreStore) Close() {
	if s.client != nil {
		s.client.Close()
	}
}

// EnsureStore is a no-op: Firestore collections exist implicitly.
func (s *FirestoreStore) EnsureStore(ctx context.Context) {}

// Load returns all blueprints ordered by creation time. Unreachable or
// undecodable data degrades to an empty list plus a warning, matching the
// file store's contract.
func (s *FirestoreStore) Load(ctx context.Context) ([]domain.Blueprint, error) {
	iter := s.client.Collection(s.collection).OrderBy("CreatedAt", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	list := []domain.Blueprint{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return []domain.Blueprint{}, fmt.Errorf("firestore %s: %w", s.collection, domain.ErrStoreCorrupt)
		}
		var bp domain.Blueprint
		if err := doc.DataTo(&bp); err != nil {
			continue
		}
		list = append(list, bp)
	}
	return list, nil
}

func (s *FirestoreStore) Save(ctx context.Context, bp domain.Blueprint) error {
	bp.Config.Name = ""
	_, err := s.client.Collection(s.collection).Doc(bp.Name).Set(ctx, bp)
	return err
}

func (s *FirestoreStore) GetByName(ctx context.Context, name string) (*domain.Blueprint, bool) {
	doc, err := s.client.Collection(s.collection).Doc(name).Get(ctx)
	if err != nil {
		return nil, false
	}
	var bp domain.Blueprint
	if err := doc.DataTo(&bp); err != nil {
		return nil, false
	}
	return &bp, true
}

func (s *FirestoreStore) Update(ctx context.Context, name string, bp domain.Blueprint) error {
	if _, ok := s.GetByName(ctx, name); !ok {
		return fmt.Errorf("%q: %w", name, domain.ErrNotFound)
	}
	bp.Config.Name = ""
	_, err := s.client.Collection(s.collection).Doc(name).Set(ctx, bp)
	return err
}

func (s *FirestoreStore) Delete(ctx context.Context, name string) error {
	if _, ok := s.GetByName(ctx, name); !ok {
		return fmt.Errorf("%q: %w", name, domain.ErrNotFound)
	}
	_, err := s.client.Collection(s.collection).Doc(name).Delete(ctx)
	return err
}

func (s *FirestoreStore) ExportAll(ctx context.Context, path string) error {
	list, _ := s.Load(ctx)
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	if err := s.fs.WriteFile(path, append(data, '\n')); err != nil {
		return &domain.IOFailure{Op: "write", Path: path, Err: err}
	}
	return nil
}

func (s *FirestoreStore) ImportAll(ctx context.Context, path string, overwrite bool) (int, error) {
	data, err := s.fs.ReadFile(path)
	if err != nil {
		return 0, &domain.IOFailure{Op: "read", Path: path, Err: err}
	}

	var records []importRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}

	imported := 0
	for _, rec := range records {
		if !rec.valid() {
			continue
		}
		bp := rec.blueprint()
		if _, exists := s.GetByName(ctx, bp.Name); exists && !overwrite {
			continue
		}
		if err := s.Save(ctx, bp); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}
