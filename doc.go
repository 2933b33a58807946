// Package bookstand provides the inventory and sales ledger for a
// single-store bookstore. It is designed to be local-first and auditable,
// keeping the whole state in two human-readable CSV files.
//
// The core functionalities include:
//   - Inventory Management: a catalog of books keyed by title, with current
//     stock and price, mutated only by adding stock, overwriting a stock
//     count, or recording a sale.
//   - Sales Ledger: an immutable, append-only log of completed sales, each
//     carrying the revenue computed from the price at the moment of sale.
//   - Reporting: aggregate summaries (total revenue, units sold per title)
//     and chart-ready groupings (by genre, by calendar month) derived from
//     the sales log joined with inventory metadata.
//   - Data Persistence: encoding and decoding of both tables to and from
//     flat CSV files, recovering to empty tables when no prior state exists.
//
// This package serves as the foundational logic for the `bks` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package bookstand
