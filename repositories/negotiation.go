//go:generate go run go.uber.org/mock/mockgen -source=negotiation.go -destination=../mocks/mock_negotiation_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/protobuf/proto"

	"mealmatch/domain"
	"mealmatch/errors"
	pb "mealmatch/proto/storage"
)

type INegotiationRepository interface {
	Create(n domain.Negotiation) error
	Get(id uuid.UUID) (domain.Negotiation, error)
	Transition(id uuid.UUID, apply func(*domain.Negotiation) error) (domain.Negotiation, error)
	ListByUser(userID string) ([]domain.Negotiation, error)
	ListByRestaurant(restaurantID string, onlyPending bool) ([]domain.Negotiation, error)
	ListAll() ([]domain.Negotiation, error)
}

// NegotiationRepository persists bargains in BadgerDB.
//
// Key layout:
//   - "bargain:id:{uuid}"                          -> record (protobuf)
//   - "bargain:user:{userID}:{ts_padded}:{uuid}"   -> uuid (listing index)
//   - "bargain:rest:{restID}:{ts_padded}:{uuid}"   -> uuid (listing index)
//
// The 19-digit zero-padded creation timestamp makes the index keys sort
// chronologically under Badger's lexicographic iteration, so reverse
// prefix scans yield newest-first listings without sorting in memory.
type NegotiationRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewNegotiationRepository(db *badger.DB, log *slog.Logger) NegotiationRepository {
	return NegotiationRepository{db: db, log: log}
}

func primaryKey(id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("bargain:id:%s", id))
}

func userIndexKey(n domain.Negotiation) []byte {
	return []byte(fmt.Sprintf("bargain:user:%s:%019d:%s", n.UserID, n.CreatedAt.UnixNano(), n.ID))
}

func restaurantIndexKey(n domain.Negotiation) []byte {
	return []byte(fmt.Sprintf("bargain:rest:%s:%019d:%s", n.RestaurantID, n.CreatedAt.UnixNano(), n.ID))
}

// Create persists a freshly proposed bargain and its two listing index
// entries in a single transaction.
func (r NegotiationRepository) Create(n domain.Negotiation) error {
	bytes, err := proto.Marshal(lo.ToPtr(fromNegotiation(n)))
	if err != nil {
		return err
	}
	idValue := []byte(n.ID.String())
	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(primaryKey(n.ID), bytes); err != nil {
			return err
		}
		if err := txn.Set(userIndexKey(n), idValue); err != nil {
			return err
		}
		return txn.Set(restaurantIndexKey(n), idValue)
	})
}

func (r NegotiationRepository) Get(id uuid.UUID) (domain.Negotiation, error) {
	var n domain.Negotiation
	err := r.db.View(func(txn *badger.Txn) error {
		var err error
		n, err = readNegotiation(txn, id)
		return err
	})
	return n, err
}

// Transition re-reads the current record and applies the state-machine
// mutation inside one Badger update transaction. The precondition check
// lives in apply (the domain transition method), so a competing writer
// that landed first makes the re-read see the new status and apply fail
// with a state conflict. No partial application is possible: any error
// from apply aborts the transaction with the record untouched.
func (r NegotiationRepository) Transition(id uuid.UUID, apply func(*domain.Negotiation) error) (domain.Negotiation, error) {
	var updated domain.Negotiation
	err := r.db.Update(func(txn *badger.Txn) error {
		n, err := readNegotiation(txn, id)
		if err != nil {
			return err
		}
		if err := apply(&n); err != nil {
			return err
		}
		bytes, err := proto.Marshal(lo.ToPtr(fromNegotiation(n)))
		if err != nil {
			return err
		}
		if err := txn.Set(primaryKey(n.ID), bytes); err != nil {
			return err
		}
		updated = n
		return nil
	})
	if err != nil {
		return domain.Negotiation{}, err
	}
	return updated, nil
}

func (r NegotiationRepository) ListByUser(userID string) ([]domain.Negotiation, error) {
	prefix := fmt.Sprintf("bargain:user:%s:", userID)
	return r.listByIndex(prefix, nil)
}

// ListByRestaurant returns a restaurant's incoming bargains, newest
// first. With onlyPending set it keeps only offers still awaiting a
// response, which is what the restaurant console polls for.
func (r NegotiationRepository) ListByRestaurant(restaurantID string, onlyPending bool) ([]domain.Negotiation, error) {
	prefix := fmt.Sprintf("bargain:rest:%s:", restaurantID)
	var filter func(domain.Negotiation) bool
	if onlyPending {
		filter = func(n domain.Negotiation) bool { return n.Status == domain.StatusPending }
	}
	return r.listByIndex(prefix, filter)
}

// listByIndex walks an index prefix in reverse (newest first) and
// resolves each entry to its primary record within the same view.
func (r NegotiationRepository) listByIndex(prefix string, keep func(domain.Negotiation) bool) ([]domain.Negotiation, error) {
	var result []domain.Negotiation
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		prefixBytes := []byte(prefix)
		// Seek past the last possible key under this prefix, then walk back.
		seekKey := append([]byte(prefix), 0xFF)
		for it.Seek(seekKey); it.ValidForPrefix(prefixBytes); it.Next() {
			var id uuid.UUID
			err := it.Item().Value(func(value []byte) error {
				parsed, err := uuid.Parse(string(value))
				id = parsed
				return err
			})
			if err != nil {
				return err
			}
			n, err := readNegotiation(txn, id)
			if err != nil {
				return err
			}
			if keep != nil && !keep(n) {
				continue
			}
			result = append(result, n)
		}
		return nil
	})
	return result, err
}

// ListAll scans every primary record, newest first. Admin dashboard only;
// there is no pagination because the store is bounded by expiry.
func (r NegotiationRepository) ListAll() ([]domain.Negotiation, error) {
	var result []domain.Negotiation
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte("bargain:id:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var n domain.Negotiation
			err := it.Item().Value(func(value []byte) error {
				var err error
				n, err = unmarshalNegotiation(value)
				return err
			})
			if err != nil {
				return err
			}
			result = append(result, n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func readNegotiation(txn *badger.Txn, id uuid.UUID) (domain.Negotiation, error) {
	item, err := txn.Get(primaryKey(id))
	if err == badger.ErrKeyNotFound {
		return domain.Negotiation{}, fmt.Errorf("%w: bargain %s", errors.ErrNotFound, id)
	}
	if err != nil {
		return domain.Negotiation{}, err
	}
	var n domain.Negotiation
	err = item.Value(func(value []byte) error {
		var err error
		n, err = unmarshalNegotiation(value)
		return err
	})
	return n, err
}

func unmarshalNegotiation(value []byte) (domain.Negotiation, error) {
	var record pb.Bargain
	if err := proto.Unmarshal(value, &record); err != nil {
		return domain.Negotiation{}, err
	}
	return toNegotiation(&record)
}

func fromNegotiation(n domain.Negotiation) pb.Bargain {
	return pb.Bargain{
		Id:            n.ID.String(),
		UserId:        n.UserID,
		MealId:        n.MealID,
		RestaurantId:  n.RestaurantID,
		OriginalPrice: n.OriginalPrice,
		ProposedPrice: n.ProposedPrice,
		CounterPrice:  n.CounterPrice,
		FinalPrice:    n.FinalPrice,
		Status:        string(n.Status),
		Message:       n.Message,
		CreatedAt:     n.CreatedAt.UnixNano(),
		UpdatedAt:     n.UpdatedAt.UnixNano(),
		ExpiresAt:     n.ExpiresAt.UnixNano(),
	}
}

func toNegotiation(record *pb.Bargain) (domain.Negotiation, error) {
	parsedID, err := uuid.Parse(record.Id)
	if err != nil {
		return domain.Negotiation{}, err
	}
	return domain.Negotiation{
		ID:            parsedID,
		UserID:        record.UserId,
		MealID:        record.MealId,
		RestaurantID:  record.RestaurantId,
		OriginalPrice: record.OriginalPrice,
		ProposedPrice: record.ProposedPrice,
		CounterPrice:  record.CounterPrice,
		FinalPrice:    record.FinalPrice,
		Status:        domain.Status(record.Status),
		Message:       record.Message,
		CreatedAt:     time.Unix(0, record.CreatedAt).UTC(),
		UpdatedAt:     time.Unix(0, record.UpdatedAt).UTC(),
		ExpiresAt:     time.Unix(0, record.ExpiresAt).UTC(),
	}, nil
}
