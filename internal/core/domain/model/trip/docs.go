// Package trip provides the Trip aggregate root and its lifecycle state
// machine.
//
// A trip is a claim on one vehicle and one driver. It is created in Draft
// without holding the claim; dispatching acquires it, and completing or
// cancelling releases it. Draft is the only status permitting update or
// delete, and Completed/Cancelled are terminal.
package trip
