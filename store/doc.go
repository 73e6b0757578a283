// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store provides the dashboard's data-access layer: one Store
contract with two interchangeable backends.

# Backends

  - SQLStore: relational rows over database/sql, driven by either
    modernc.org/sqlite or lib/pq. Auto-increment integer keys, native
    joins and aggregate counts.
  - SurrealStore: schemaless documents over the SurrealDB client.
    Store-generated string record ids, joins and counts simulated with
    sequential queries.

The backend is chosen once at startup:

	st, err := store.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer st.Close()

# Errors

Failed operations return errors classified by the ErrNotFound, ErrConflict
and ErrValidation sentinels (match with errors.Is). Underlying driver
errors propagate unclassified; the store never retries.

# Known limitations

Registration uniqueness and the one-note-per-user rule are read-before-
write checks, not store-level constraints, so concurrent writers can race
them. Not-found detection on mutations is uneven across entities and
backends. Both behaviors are inherited and covered by the contract tests.
*/
package store
