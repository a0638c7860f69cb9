// Package router owns the in-process location the TUI navigates by.
//
// Locations look like URLs ("/calls/?page=2", "/calls/c42"). The Router
// keeps a history stack and resolves each location against a route table of
// compiled patterns. Screens never change the location themselves; they ask
// the app to navigate and re-read what they need from the resulting Match.
package router
