package bookstand

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/rs/zerolog/log"
)

// Store persists the ledger to its two table files. Loading always succeeds:
// an absent or malformed file is recovered by substituting an empty,
// well-shaped table. Saving propagates I/O errors, there is no recovery path
// for a state that cannot be persisted.
type Store struct {
	InventoryFile string
	SalesFile     string
}

// Load reads both tables and returns the ledger they describe.
func (s Store) Load() *Ledger {
	books := loadTable(s.InventoryFile, DecodeInventory)
	sales := loadTable(s.SalesFile, DecodeSales)
	return NewLedgerFrom(books, sales)
}

// loadTable reads and decodes one table file, recovering the two conditions
// the operator can cause (no file yet, hand-edited broken file) to an empty
// table.
func loadTable[T any](filename string, decode func(io.Reader) ([]T, error)) []T {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("file", filename).Msg("no previous state, starting empty")
		return nil
	}
	if err != nil {
		log.Warn().Err(err).Str("file", filename).Msg("cannot read file, starting empty")
		return nil
	}
	defer f.Close()

	rows, err := decode(f)
	if err != nil {
		log.Warn().Err(err).Str("file", filename).Msg("cannot parse file, starting empty")
		return nil
	}
	return rows
}

// Save writes the current in-memory state back to both table files.
func (s Store) Save(ledger *Ledger) error {
	if err := saveTable(s.InventoryFile, ledger, EncodeInventory); err != nil {
		return err
	}
	return saveTable(s.SalesFile, ledger, EncodeSales)
}

func saveTable(filename string, ledger *Ledger, encode func(io.Writer, *Ledger) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("persist error: cannot create file %q: %w", filename, err)
	}
	defer f.Close()

	if err := encode(f, ledger); err != nil {
		return fmt.Errorf("persist error: write error on file %q: %w", filename, err)
	}
	log.Debug().Str("file", filename).Msg("saved")
	return nil
}
