package generator

// Web target templates: entry point, app shell, styling, and the supporting
// config structure. Page-level templates that also serve the mobile target
// live in pages_templates.go.

const indexHTMLTemplate = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{{.Name}}</title>
  </head>
  <body>
    <div id="root"></div>
    <script type="module" src="/src/index.jsx"></script>
  </body>
</html>
`

const webEntryTemplate = `import React from 'react';
import { createRoot } from 'react-dom/client';
import App from './App';
import './styles/global.css';
{{- if .Features.ResponsiveLayout}}
import './styles/responsive.css';
{{- end}}
{{- if eq .StateManagement "redux"}}
import { Provider } from 'react-redux';
import { store } from './store';
{{- end}}
{{- if eq .StateManagement "context"}}
import { AuthProvider } from './context/AuthContext';
{{- end}}

const root = createRoot(document.getElementById('root'));
root.render(
  <React.StrictMode>
{{- if eq .StateManagement "redux"}}
    <Provider store={store}>
      <App />
    </Provider>
{{- else if eq .StateManagement "context"}}
    <AuthProvider>
      <App />
    </AuthProvider>
{{- else}}
    <App />
{{- end}}
  </React.StrictMode>
);
`

const appShellTemplate = `import React from 'react';
import { BrowserRouter, Routes, Route } from 'react-router-dom';
{{- if .Features.Authentication}}
import Login from './auth/Login';
import Register from './auth/Register';
{{- end}}
{{- if .Features.UserProfiles}}
import Profile from './pages/Profile';
{{- end}}
{{- if .Features.UserSettings}}
import Settings from './pages/Settings';
{{- end}}
{{- if .ThemeToggle}}
import ThemeToggle from './components/ThemeToggle';
{{- end}}

export default function App() {
  return (
    <BrowserRouter>
{{- if .ThemeToggle}}
      <header>
        <h1>{{.Name}}</h1>
        <ThemeToggle />
      </header>
{{- else}}
      <header>
        <h1>{{.Name}}</h1>
      </header>
{{- end}}
      <Routes>
        <Route path="/" element={<main>Welcome to {{.Name}}</main>} />
{{- if .Features.Authentication}}
        <Route path="/login" element={<Login />} />
        <Route path="/register" element={<Register />} />
{{- end}}
{{- if .Features.UserProfiles}}
        <Route path="/profile" element={<Profile />} />
{{- end}}
{{- if .Features.UserSettings}}
        <Route path="/settings" element={<Settings />} />
{{- end}}
      </Routes>
    </BrowserRouter>
  );
}
`

const globalCSSTemplate = `:root {
  --color-bg: #ffffff;
  --color-fg: #1a1a2e;
  --color-accent: #2563eb;
}

[data-theme='dark'] {
  --color-bg: #1a1a2e;
  --color-fg: #f1f1f1;
}

body {
  margin: 0;
  font-family: system-ui, sans-serif;
  background: var(--color-bg);
  color: var(--color-fg);
}
`

const responsiveCSSTemplate = `@media (max-width: 768px) {
  header {
    flex-direction: column;
  }
  main {
    padding: 0.5rem;
  }
}

@media (min-width: 1200px) {
  main {
    max-width: 1140px;
    margin: 0 auto;
  }
}
`

const themeToggleTemplate = `import React, { useEffect, useState } from 'react';

export default function ThemeToggle() {
  const [theme, setTheme] = useState(
    () => localStorage.getItem('theme') || 'light'
  );

  useEffect(() => {
    document.documentElement.setAttribute('data-theme', theme);
    localStorage.setItem('theme', theme);
  }, [theme]);

  return (
    <button onClick={() => setTheme(theme === 'light' ? 'dark' : 'light')}>
      {theme === 'light' ? 'Dark mode' : 'Light mode'}
    </button>
  );
}
`

const apiClientTemplate = `import axios from 'axios';

{{- if eq .APIType "graphql"}}

const client = axios.create({
  baseURL: process.env.API_BASE_URL || 'http://localhost:4000/graphql',
});

export async function query(queryString, variables) {
  const res = await client.post('', { query: queryString, variables });
  return res.data.data;
}
{{- else}}

const client = axios.create({
  baseURL: process.env.API_BASE_URL || 'http://localhost:4000/api',
});

export default client;
{{- end}}
`
