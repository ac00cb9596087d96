package generator

// Mobile (React Native) target templates.

const mobileAppTemplate = `import React from 'react';
import { NavigationContainer } from '@react-navigation/native';
{{- if eq .StateManagement "redux"}}
import { Provider } from 'react-redux';
import { store } from './src/store';
{{- end}}
{{- if eq .StateManagement "context"}}
import { AuthProvider } from './src/context/AuthContext';
{{- end}}
import RootNavigator from './src/navigation';

export default function App() {
{{- if eq .StateManagement "redux"}}
  return (
    <Provider store={store}>
      <NavigationContainer>
        <RootNavigator />
      </NavigationContainer>
    </Provider>
  );
{{- else if eq .StateManagement "context"}}
  return (
    <AuthProvider>
      <NavigationContainer>
        <RootNavigator />
      </NavigationContainer>
    </AuthProvider>
  );
{{- else}}
  return (
    <NavigationContainer>
      <RootNavigator />
    </NavigationContainer>
  );
{{- end}}
}
`

const mobileConfigTemplate = `{
  "name": "{{.Name}}",
  "displayName": "{{title .Name}}"
}
`

const navIndexTemplate = `import React from 'react';
import { createNativeStackNavigator } from '@react-navigation/native-stack';
import HomeScreen from '../screens/HomeScreen';
{{- if .Features.Authentication}}
import LoginScreen from '../screens/LoginScreen';
import RegisterScreen from '../screens/RegisterScreen';
{{- end}}
{{- if .Features.UserProfiles}}
import ProfileScreen from '../screens/ProfileScreen';
{{- end}}
{{- if .Features.UserSettings}}
import SettingsScreen from '../screens/SettingsScreen';
{{- end}}

const Stack = createNativeStackNavigator();

export default function RootNavigator() {
  return (
    <Stack.Navigator initialRouteName="Home">
      <Stack.Screen name="Home" component={HomeScreen} />
{{- if .Features.Authentication}}
      <Stack.Screen name="Login" component={LoginScreen} />
      <Stack.Screen name="Register" component={RegisterScreen} />
{{- end}}
{{- if .Features.UserProfiles}}
      <Stack.Screen name="Profile" component={ProfileScreen} />
{{- end}}
{{- if .Features.UserSettings}}
      <Stack.Screen name="Settings" component={SettingsScreen} />
{{- end}}
    </Stack.Navigator>
  );
}
`

const homeScreenTemplate = `import React from 'react';
import { View, Text } from 'react-native';

export default function HomeScreen() {
  return (
    <View>
      <Text>Welcome to {{.Name}}</Text>
    </View>
  );
}
`
