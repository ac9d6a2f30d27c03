// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order moves a rental request from creation through payment, landlord
// confirmation, and finally a lease, or through cancellation/refund. State
// transitions are the only way to mutate an order, and every transition's
// side effects (ledger pairs, inventory updates, lease creation) are
// orchestrated by the command handlers within one unit of work.
package order
