// Command inspect dumps persisted negotiation and order records as a
// table, opening the store read-only so it works while the server runs.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"google.golang.org/protobuf/proto"

	pb "mealmatch/proto/storage"
)

func main() {
	dbPath := flag.String("db", "/tmp/mealmatch", "Path to badger DB")
	// bargain:id: holds the canonical records; user/restaurant keys are indexes.
	prefix := flag.String("prefix", "bargain:id:", "Prefix to scan (bargain:id: or order:id:)")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
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

	switch {
	case strings.HasPrefix(*prefix, "order:"):
		table.SetHeader([]string{"Key", "User", "Total", "Fee", "Status", "Bargain", "Placed"})
		err = scan(db, *prefix, func(key string, val []byte) error {
			var p pb.Order
			if err := proto.Unmarshal(val, &p); err != nil {
				fmt.Printf("Error unmarshaling key %s: %v\n", key, err)
				return nil
			}
			table.Append([]string{
				key,
				shortID(p.UserId),
				fmt.Sprintf("%.2f", p.TotalAmount),
				fmt.Sprintf("%.2f", p.DeliveryFee),
				p.Status,
				shortID(p.BargainId),
				time.Unix(0, p.PlacedAt).Format("15:04:05"),
			})
			return nil
		})
	default:
		table.SetHeader([]string{"Key", "User", "Meal", "Original", "Proposed", "Counter", "Final", "Status", "Expires"})
		err = scan(db, *prefix, func(key string, val []byte) error {
			var p pb.Bargain
			if err := proto.Unmarshal(val, &p); err != nil {
				fmt.Printf("Error unmarshaling key %s: %v\n", key, err)
				return nil
			}
			table.Append([]string{
				key,
				shortID(p.UserId),
				shortID(p.MealId),
				fmt.Sprintf("%.2f", p.OriginalPrice),
				fmt.Sprintf("%.2f", p.ProposedPrice),
				formatOptional(p.CounterPrice),
				formatOptional(p.FinalPrice),
				colorStatus(p.Status),
				time.Unix(0, p.ExpiresAt).Format("15:04:05"),
			})
			return nil
		})
	}
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func scan(db *badger.DB, prefix string, visit func(key string, val []byte) error) error {
	return db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())
			if err := item.Value(func(v []byte) error {
				return visit(key, v)
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

func colorStatus(status string) string {
	switch status {
	case "accepted", "counter_accepted":
		return color.Green.Sprint(status)
	case "rejected", "counter_rejected":
		return color.Red.Sprint(status)
	case "countered":
		return color.Yellow.Sprint(status)
	default:
		return status
	}
}

func formatOptional(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true).
		WithValueLogFileSize(10 * 1024 * 1024)

	return badger.Open(opts)
}
