// Package bridge runs automation scripts against the host notes application.
//
// The bridge shells out to osascript, one process per call, with the script
// on stdin and JavaScript for Automation as the default language. Standard
// output is returned trimmed; every failure is a *ScriptError:
//
//	out, err := bridge.NewOsascript("osascript").Run(ctx, script)
//	if bridge.IsUnavailable(err) {
//	    // osascript missing, Notes not running, or automation not allowed
//	}
//
// Callers depend on the Runner interface so tests can substitute a fake
// host without macOS.
package bridge
