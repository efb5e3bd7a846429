// Package clearing replays an ordered stream of financial transaction
// records against per-client account balances and produces a final
// balance snapshot.
//
// The core functionalities include:
//   - Ledger Engine: a state machine that applies deposits and
//     withdrawals and walks accepted transactions through the dispute
//     lifecycle (dispute, resolve, chargeback), locking an account
//     permanently on chargeback.
//   - Streaming Input: a CSV decoder that turns input rows into typed
//     records and silently drops the ones that do not match the schema,
//     so that one bad row never stops the rest of the stream.
//   - Replay Pipeline: a single decoding producer feeding the engine
//     over an ordered hand-off, preserving input order end to end.
//   - Snapshot Output: a CSV encoder for the final account state.
//   - Workload Generation: a deterministic random generator for
//     producing test input files.
//
// This package serves as the foundational logic for the `pce` batch
// replayer and the `pcetool` command-line tool.
package clearing
