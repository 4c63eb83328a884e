// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Snapshot is the result of one complete sync cycle. The three parts are
// always fetched and applied together.
type Snapshot struct {
	Portfolio []PortfolioItem
	Catalogue []CatalogueItem
	Contact   Contact
}
