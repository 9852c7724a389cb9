// Copyright (c) 2026 HireU Team
// HireU - job board salary tooling
// This source code is licensed under the MIT license found in the LICENSE file.

package db

// New initializes and returns a bun-backed Store for the given dbType and dsn
// and makes it the package default returned by DefaultStore.
func New(dbType, dsn string) (Store, error) {
	s, err := NewStoreFromDSN(dbType, dsn)
	if err != nil {
		return nil, err
	}
	setDefault(s)
	return s, nil
}
