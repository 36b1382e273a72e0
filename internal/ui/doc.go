// Package ui contains the Bubble Tea program that presents the menu
// navigator in a terminal.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses in navigation.go, resizes alongside them).
//   - Key presses are mapped to command.Command values and applied through
//     the command bus, which owns tracing and the informational messages for
//     leaf entries and the root menu.
//
// State ownership:
//   - All navigation state lives in internal/ui/state.Navigator. The model
//     only keeps presentation concerns: the latest info message, the active
//     theme, and the viewport size.
//
// The same navigator can be driven by the console host in internal/console,
// so the UI never duplicates transition rules.
package ui
