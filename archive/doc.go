// Package archive loads archive documents and resolves references within
// them.
//
// Documents arrive as JSON or YAML and are held as ir.Node trees. A
// document may be partial: the backend serves "required"-shaped subsets of
// large archives, and Merge reconciles successive partial fetches into one
// resident root. References between archive values are fragment paths
// ("#/run/0/system/3"); ResolveRef navigates them against the root
// document and fails with ErrUnresolvedReference when the target is not
// resident.
package archive
