package generator

// Server-side templates, used by backend targets and by the embedded server
// of full-stack web targets. Route index and server entry switch their mount
// path on API versioning.

const serverEntryTemplate = `require('dotenv').config();
const express = require('express');
const cors = require('cors');
const { connectDB } = require('./config/db');
{{- if .Backend.APIVersioning}}
const routes = require('./routes/v1');
{{- else}}
const routes = require('./routes');
{{- end}}

const app = express();
app.use(cors());
app.use(express.json());

{{if .Backend.APIVersioning -}}
app.use('/api/v1', routes);
{{- else -}}
app.use('/api', routes);
{{- end}}

const port = process.env.PORT || 4000;

connectDB().then(() => {
  app.listen(port, () => {
    console.log('{{.Name}} listening on port ' + port);
  });
});
`

const routeIndexTemplate = `const { Router } = require('express');
{{- if .Features.Authentication}}
const authRoutes = require('./auth');
{{- end}}
{{- if .Features.CRUDSetup}}
const itemRoutes = require('./items');
{{- end}}

const router = Router();

router.get('/health', (req, res) => {
  res.json({ status: 'ok' });
});
{{if .Features.Authentication}}
router.use('/auth', authRoutes);
{{- end}}
{{- if .Features.CRUDSetup}}
router.use('/items', itemRoutes);
{{- end}}

module.exports = router;
`

const versionedRouteIndexTemplate = `const { Router } = require('express');
{{- if .Features.Authentication}}
const authRoutes = require('../auth');
{{- end}}
{{- if .Features.CRUDSetup}}
const itemRoutes = require('../items');
{{- end}}

// Version 1 of the API surface. Route modules stay unversioned; this index
// decides what each version exposes.
const router = Router();

router.get('/health', (req, res) => {
  res.json({ status: 'ok', version: 'v1' });
});
{{if .Features.Authentication}}
router.use('/auth', authRoutes);
{{- end}}
{{- if .Features.CRUDSetup}}
router.use('/items', itemRoutes);
{{- end}}

module.exports = router;
`

const dbConfigTemplate = `{{if eq .Backend.Database "postgres" -}}
const { Pool } = require('pg');

const pool = new Pool({
  connectionString: process.env.DATABASE_URL,
});

async function connectDB() {
  await pool.query('SELECT 1');
  console.log('connected to postgres');
}

module.exports = { pool, connectDB };
{{- else if eq .Backend.Database "mysql" -}}
const mysql = require('mysql2/promise');

const pool = mysql.createPool(process.env.DATABASE_URL);

async function connectDB() {
  await pool.query('SELECT 1');
  console.log('connected to mysql');
}

module.exports = { pool, connectDB };
{{- else -}}
const mongoose = require('mongoose');

async function connectDB() {
  await mongoose.connect(process.env.MONGO_URI);
  console.log('connected to mongodb');
}

module.exports = { connectDB };
{{- end}}
`

const authRoutesTemplate = `const { Router } = require('express');
const { register, login, me } = require('../controllers/authController');
const { requireAuth } = require('../middleware/auth');

const router = Router();

router.post('/register', register);
router.post('/login', login);
router.get('/me', requireAuth, me);

module.exports = router;
`

const authControllerTemplate = `const bcrypt = require('bcryptjs');
const jwt = require('jsonwebtoken');
const User = require('../models/User');

async function register(req, res) {
  const { email, password } = req.body;
  if (!email || !password) {
    return res.status(400).json({ error: 'email and password are required' });
  }
  const hash = await bcrypt.hash(password, 10);
  const user = await User.create({ email, password: hash });
  res.status(201).json({ id: user.id, email: user.email });
}

async function login(req, res) {
  const { email, password } = req.body;
  const user = await User.findByEmail(email);
  if (!user || !(await bcrypt.compare(password, user.password))) {
    return res.status(401).json({ error: 'invalid credentials' });
  }
  const token = jwt.sign({ sub: user.id{{if .Backend.RoleBasedAuth}}, role: user.role{{end}} }, process.env.JWT_SECRET, {
    expiresIn: '1h',
  });
  res.json({ token });
}

async function me(req, res) {
  res.json({ user: req.user });
}

module.exports = { register, login, me };
`

const userModelTemplate = `{{if eq .Backend.Database "mongodb" -}}
const mongoose = require('mongoose');

const userSchema = new mongoose.Schema(
  {
    email: { type: String, required: true, unique: true },
    password: { type: String, required: true },
{{- if .Backend.RoleBasedAuth}}
    role: { type: String, default: 'user' },
{{- end}}
  },
  { timestamps: true }
);

const UserModel = mongoose.model('User', userSchema);

module.exports = {
  create: (data) => UserModel.create(data),
  findByEmail: (email) => UserModel.findOne({ email }),
  findById: (id) => UserModel.findById(id),
};
{{- else -}}
const { pool } = require('../config/db');

module.exports = {
  async create({ email, password }) {
    const result = await pool.query(
      'INSERT INTO users (email, password) VALUES ($1, $2) RETURNING *',
      [email, password]
    );
    return result.rows ? result.rows[0] : result[0];
  },
  async findByEmail(email) {
    const result = await pool.query('SELECT * FROM users WHERE email = $1', [email]);
    return result.rows ? result.rows[0] : result[0][0];
  },
  async findById(id) {
    const result = await pool.query('SELECT * FROM users WHERE id = $1', [id]);
    return result.rows ? result.rows[0] : result[0][0];
  },
};
{{- end}}
`

const authMiddlewareTemplate = `const jwt = require('jsonwebtoken');

function requireAuth(req, res, next) {
  const header = req.headers.authorization || '';
  if (!header.startsWith('Bearer ')) {
    return res.status(401).json({ error: 'authorization header required' });
  }
  try {
    req.user = jwt.verify(header.slice(7), process.env.JWT_SECRET);
    next();
  } catch (err) {
    res.status(401).json({ error: 'invalid token' });
  }
}

module.exports = { requireAuth };
`

const rolesMiddlewareTemplate = `function requireRole(role) {
  return (req, res, next) => {
    if (!req.user || req.user.role !== role) {
      return res.status(403).json({ error: 'forbidden' });
    }
    next();
  };
}

module.exports = { requireRole };
`

const jwtUtilTemplate = `const jwt = require('jsonwebtoken');

function sign(payload, options) {
  return jwt.sign(payload, process.env.JWT_SECRET, { expiresIn: '1h', ...options });
}

function verify(token) {
  return jwt.verify(token, process.env.JWT_SECRET);
}

module.exports = { sign, verify };
`

const itemModelTemplate = `{{if eq .Backend.Database "mongodb" -}}
const mongoose = require('mongoose');

const itemSchema = new mongoose.Schema(
  {
    name: { type: String, required: true },
  },
  { timestamps: true }
);

module.exports = mongoose.model('Item', itemSchema);
{{- else -}}
const { pool } = require('../config/db');

module.exports = {
  async list() {
    const result = await pool.query('SELECT * FROM items ORDER BY id');
    return result.rows || result[0];
  },
  async create({ name }) {
    const result = await pool.query(
      'INSERT INTO items (name) VALUES ($1) RETURNING *',
      [name]
    );
    return result.rows ? result.rows[0] : result[0];
  },
};
{{- end}}
`

const itemControllerTemplate = `const Item = require('../models/Item');

async function list(req, res) {
  {{- if eq .Backend.Database "mongodb"}}
  const items = await Item.find().sort({ createdAt: -1 });
  {{- else}}
  const items = await Item.list();
  {{- end}}
  res.json(items);
}

async function create(req, res) {
  const item = await Item.create(req.body);
  res.status(201).json(item);
}

module.exports = { list, create };
`

const itemRoutesTemplate = `const { Router } = require('express');
const { list, create } = require('../controllers/itemController');
{{- if .Features.Authentication}}
const { requireAuth } = require('../middleware/auth');
{{- end}}

const router = Router();

{{if .Features.Authentication -}}
router.get('/', list);
router.post('/', requireAuth, create);
{{- else -}}
router.get('/', list);
router.post('/', create);
{{- end}}

module.exports = router;
`
