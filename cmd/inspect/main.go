package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

// Operator tool: dumps persisted hub state from BadgerDB. Token values
// are redacted; this is for inspecting what the state store holds, not
// for extracting credentials.
func main() {
	dbPath := flag.String("db", "", "Path to badger DB")
	prefix := flag.String("prefix", "state:", "Prefix to scan (state: or token:)")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("missing -db path")
	}

	// Read-only, and BypassLockGuard so the dump works while the hub is
	// running.
	opts := badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Provider", "Kind", "Value"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())

			err := item.Value(func(v []byte) error {
				provider, kind := splitKey(key)
				value := preview(key, v)
				table.Append([]string{key, provider, kind, value})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Scan failed: ", err)
	}
	table.Render()
}

// splitKey parses "state:{provider}:{kind}" and "token:{provider}".
func splitKey(key string) (provider, kind string) {
	parts := strings.SplitN(key, ":", 3)
	switch len(parts) {
	case 2:
		return parts[1], parts[0]
	case 3:
		return parts[1], parts[2]
	default:
		return "", key
	}
}

func preview(key string, v []byte) string {
	if strings.HasPrefix(key, "token:") {
		return "<redacted>"
	}
	s := string(v)
	if len(s) > 80 {
		return fmt.Sprintf("%s… (%d bytes)", s[:80], len(v))
	}
	return s
}
