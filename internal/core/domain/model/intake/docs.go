// Package intake contains the ImportRequest aggregate: an agency's request to
// be stocked with vehicles, decided exactly once as APPROVED or REJECTED.
// Approval only authorizes the intake; vehicle rows are created by a separate
// inventory process.
package intake
