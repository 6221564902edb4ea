// Package sim provides the cost estimation and dispatch simulation engine for
// the courier service.
//
// # Reading Guide
//
// Start with these files to understand the pipeline:
//   - package.go: the Package record and how each stage annotates it
//   - batch_formation.go: first-fit-descending grouping into weight-bounded batches
//   - simulator.go: the dispatch loop over the vehicle queue
//   - pipeline.go: Run, which composes estimator, partitioner and simulator
//
// # Pipeline
//
// A run flows through three stages, each returning new values rather than
// mutating its input:
//
//	raw packages -> EstimatePackages -> PartitionBatches -> Simulator.Dispatch
//
// Offers live in an OfferCatalog that is constructed once and passed
// explicitly; there is no process-wide offer list.
//
// # Time
//
// Simulated time is kept in integer ticks of 0.01 hour (see clock.go). Transit
// times truncate to a whole tick and delivery times are reported with two
// decimals, so results are reproducible bit-for-bit across runs.
//
// Decision records for individual trips are collected by sim/trace when
// tracing is enabled.
package sim
