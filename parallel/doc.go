package parallel

/*

# Data parallel iteration over arbor trees

This package fans flat, index-order iteration out across a fixed set of
worker goroutines. It exists as a separate package so that consumers of the
sequential container never link a concurrency dependency.

The arena is partitioned into contiguous, disjoint index ranges, one per
worker. Disjoint indices address disjoint payload slots, so no per-element
synchronization is needed; the only coordination is the final wait. No
ordering of callback invocations across workers is guaranteed or implied. Do
not use this package when callback execution order is observable.

The callbacks receive live payload pointers, exactly as Tree.All yields
them. The tree must not be structurally mutated for the duration; the usual
single-writer discipline applies across the whole ForEach call.

*/
