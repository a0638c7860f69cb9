// Package tui is the interactive call history browser.
//
// App is the root Bubble Tea model. It owns the router and hands locations to
// two screens:
//   - CallsModel, the paginated call list at /calls/?page=N
//   - DetailModel, a single call at /calls/{id}
//
// Screens never change the location. They return NavigateMsg or BackMsg
// commands and App answers with a LocationChangedMsg carrying the resolved
// route, from which the screen re-derives its state.
package tui
