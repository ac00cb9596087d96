package generator

// Page and state-management templates shared by the web and mobile targets.
// Each switches on the project type so planners can reuse one identifier for
// both render variants.

const loginPageTemplate = `{{if eq .Type "mobile" -}}
import React, { useState } from 'react';
import { View, Text, TextInput, Button } from 'react-native';
import api from '../services/api';

export default function LoginScreen({ navigation }) {
  const [email, setEmail] = useState('');
  const [password, setPassword] = useState('');

  const onSubmit = async () => {
    await api.post('/auth/login', { email, password });
    navigation.navigate('Home');
  };

  return (
    <View>
      <Text>Log in</Text>
      <TextInput value={email} onChangeText={setEmail} placeholder="Email" />
      <TextInput value={password} onChangeText={setPassword} secureTextEntry placeholder="Password" />
      <Button title="Log in" onPress={onSubmit} />
    </View>
  );
}
{{- else -}}
import React, { useState } from 'react';
import api from '../services/api';

export default function Login() {
  const [email, setEmail] = useState('');
  const [password, setPassword] = useState('');

  const onSubmit = async (e) => {
    e.preventDefault();
    await api.post('/auth/login', { email, password });
  };

  return (
    <form onSubmit={onSubmit}>
      <h2>Log in</h2>
      <input value={email} onChange={(e) => setEmail(e.target.value)} placeholder="Email" />
      <input type="password" value={password} onChange={(e) => setPassword(e.target.value)} placeholder="Password" />
      <button type="submit">Log in</button>
    </form>
  );
}
{{- end}}
`

const registerPageTemplate = `{{if eq .Type "mobile" -}}
import React, { useState } from 'react';
import { View, Text, TextInput, Button } from 'react-native';
import api from '../services/api';

export default function RegisterScreen({ navigation }) {
  const [email, setEmail] = useState('');
  const [password, setPassword] = useState('');

  const onSubmit = async () => {
    await api.post('/auth/register', { email, password });
    navigation.navigate('Login');
  };

  return (
    <View>
      <Text>Create account</Text>
      <TextInput value={email} onChangeText={setEmail} placeholder="Email" />
      <TextInput value={password} onChangeText={setPassword} secureTextEntry placeholder="Password" />
      <Button title="Register" onPress={onSubmit} />
    </View>
  );
}
{{- else -}}
import React, { useState } from 'react';
import api from '../services/api';

export default function Register() {
  const [email, setEmail] = useState('');
  const [password, setPassword] = useState('');

  const onSubmit = async (e) => {
    e.preventDefault();
    await api.post('/auth/register', { email, password });
  };

  return (
    <form onSubmit={onSubmit}>
      <h2>Create account</h2>
      <input value={email} onChange={(e) => setEmail(e.target.value)} placeholder="Email" />
      <input type="password" value={password} onChange={(e) => setPassword(e.target.value)} placeholder="Password" />
      <button type="submit">Register</button>
    </form>
  );
}
{{- end}}
`

const profilePageTemplate = `{{if eq .Type "mobile" -}}
import React from 'react';
import { View, Text } from 'react-native';

export default function ProfileScreen() {
  return (
    <View>
      <Text>Your profile</Text>
    </View>
  );
}
{{- else -}}
import React from 'react';

export default function Profile() {
  return (
    <section>
      <h2>Your profile</h2>
    </section>
  );
}
{{- end}}
`

const settingsPageTemplate = `{{if eq .Type "mobile" -}}
import React from 'react';
import { View, Text } from 'react-native';

export default function SettingsScreen() {
  return (
    <View>
      <Text>Settings</Text>
    </View>
  );
}
{{- else -}}
import React from 'react';

export default function Settings() {
  return (
    <section>
      <h2>Settings</h2>
    </section>
  );
}
{{- end}}
`

const storeIndexTemplate = `import { configureStore } from '@reduxjs/toolkit';
import authReducer from './authSlice';

export const store = configureStore({
  reducer: {
    auth: authReducer,
  },
});
`

const authSliceTemplate = `import { createSlice } from '@reduxjs/toolkit';

const authSlice = createSlice({
  name: 'auth',
  initialState: {
    user: null,
    token: null,
  },
  reducers: {
    loggedIn(state, action) {
      state.user = action.payload.user;
      state.token = action.payload.token;
    },
    loggedOut(state) {
      state.user = null;
      state.token = null;
    },
  },
});

export const { loggedIn, loggedOut } = authSlice.actions;
export default authSlice.reducer;
`

const authContextTemplate = `import React, { createContext, useContext, useState } from 'react';

const AuthContext = createContext(null);

export function AuthProvider({ children }) {
  const [user, setUser] = useState(null);

  const login = (nextUser) => setUser(nextUser);
  const logout = () => setUser(null);

  return (
    <AuthContext.Provider value={{ user, login, logout }}>
      {children}
    </AuthContext.Provider>
  );
}

export function useAuth() {
  return useContext(AuthContext);
}
`

const crudListTemplate = `{{if eq .Type "mobile" -}}
import React, { useEffect, useState } from 'react';
import { View, Text, FlatList } from 'react-native';
import { listItems } from './service';

export default function ItemList() {
  const [items, setItems] = useState([]);

  useEffect(() => {
    listItems().then(setItems);
  }, []);

  return (
    <View>
      <FlatList
        data={items}
        keyExtractor={(item) => item.id}
        renderItem={({ item }) => <Text>{item.name}</Text>}
      />
    </View>
  );
}
{{- else -}}
import React, { useEffect, useState } from 'react';
import { listItems } from './service';

export default function ItemList() {
  const [items, setItems] = useState([]);

  useEffect(() => {
    listItems().then(setItems);
  }, []);

  return (
    <ul>
      {items.map((item) => (
        <li key={item.id}>{item.name}</li>
      ))}
    </ul>
  );
}
{{- end}}
`

const crudFormTemplate = `{{if eq .Type "mobile" -}}
import React, { useState } from 'react';
import { View, TextInput, Button } from 'react-native';
import { createItem } from './service';

export default function ItemForm({ onSaved }) {
  const [name, setName] = useState('');

  const onSubmit = async () => {
    const item = await createItem({ name });
    setName('');
    if (onSaved) onSaved(item);
  };

  return (
    <View>
      <TextInput value={name} onChangeText={setName} placeholder="Name" />
      <Button title="Save" onPress={onSubmit} />
    </View>
  );
}
{{- else -}}
import React, { useState } from 'react';
import { createItem } from './service';

export default function ItemForm({ onSaved }) {
  const [name, setName] = useState('');

  const onSubmit = async (e) => {
    e.preventDefault();
    const item = await createItem({ name });
    setName('');
    if (onSaved) onSaved(item);
  };

  return (
    <form onSubmit={onSubmit}>
      <input value={name} onChange={(e) => setName(e.target.value)} placeholder="Name" />
      <button type="submit">Save</button>
    </form>
  );
}
{{- end}}
`

const crudServiceTemplate = `import api from '../../services/api';

export async function listItems() {
  const res = await api.get('/items');
  return res.data;
}

export async function getItem(id) {
  const res = await api.get('/items/' + id);
  return res.data;
}

export async function createItem(data) {
  const res = await api.post('/items', data);
  return res.data;
}

export async function updateItem(id, data) {
  const res = await api.put('/items/' + id, data);
  return res.data;
}

export async function deleteItem(id) {
  await api.delete('/items/' + id);
}
`
