// Package vswf is your in-memory toolkit for building, transforming and
// measuring vector spherical wavefunction expansions — from harmonic
// kernels to optical force and torque.
//
// 🚀 What is vswf?
//
//	A pure-Go multipole algebra that brings together:
//		• Harmonic kernels: Legendre rows, spherical Bessel/Hankel, Wigner-d
//		• Coefficient sets: resize with power-loss policy, grow, reverse
//		• Transformations: Wigner-D rotation & coaxial translation operators
//		• Field evaluation: near fields, far fields, cached grids
//		• Moments: force, torque and spin transfer via ladder sums
//		• Ensembles: independent / coherent / incoherent combination algebra
//
// ✨ Why choose vswf?
//
//   - Value semantics – every transformation returns a new set, no hidden mutation
//   - Explicit errors – sentinel errors per package, matched with errors.Is
//   - Deterministic – fixed reduction orders, reproducible run to run
//   - Extensible – bring your own scatterer: any linear map over coefficient sets
//
// Under the hood, everything is organized under seven subpackages:
//
//	sphfn/     — harmonic kernel: mode indexing, Legendre, Bessel/Hankel, Wigner-d
//	coeffs/    — coefficient sets, basis tags, resize & power accounting
//	transform/ — rotation and axial/general translation operators
//	field/     — near- and far-field evaluation with optional grid caches
//	moment/    — force, torque and spin transfer from scattering pairs
//	ensemble/  — combination semantics for beam collections
//	beams/     — canonical generators: dense mode tables, plane waves
//
// Quick ASCII example:
//
//	incident ──► [scatterer] ──► scattered
//	    │                            │
//	    └───── moment.ForceTorque ───┘
//
// Dive into examples/ for demo scenarios, and into each package's doc.go
// for the numeric conventions.
//
//	go get github.com/waveoptics/vswf
package vswf
