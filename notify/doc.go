// Package notify provides the request-scoped notification queue at the heart
// of notifykit.
//
// Server-side code queues short-lived typed messages during request processing
// with Notify (or the severity helpers Info, Success, Warning, Error, Debug).
// Messages accumulate in a per-request Queue carried on the context; the flash
// middleware installs the queue and migrates it across one redirect, and the
// dispatcher consumes it at render time.
//
// # Usage
//
//	func submit(w http.ResponseWriter, r *http.Request) {
//		// ... handle the form ...
//		notify.Success(r.Context(), "Profile updated.")
//		http.Redirect(w, r, "/profile", http.StatusSeeOther)
//	}
//
// # Error Handling
//
// Enqueueing never fails. Invalid types, debug messages outside development,
// and calls without a queue in context are silently dropped - notifications
// are best-effort by contract.
package notify
