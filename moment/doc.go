// Package moment computes optical force, torque and spin transfer from a
// paired incident and scattered expansion, as ladder-operator sums over
// each mode and its (n+1, m), (n, m+1), (n+1, m±1) neighbors.
//
// The incident set is regular and the scattered one outgoing; the outgoing
// total a+2s folds the bright half of the incident beam with the scatterer
// response. Each moment is the incoming-minus-outgoing flux difference,
// normalized so a fully absorbed beam of unit mode power transfers unit
// axial force in the infinite-order limit.
//
// The scattering operator producing the outgoing set is a collaborator:
// any linear map satisfying Scatterer will do, and this package never
// constructs one.
package moment
