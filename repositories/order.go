//go:generate go run go.uber.org/mock/mockgen -source=order.go -destination=../mocks/mock_order_repository.go -package=mocks
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

type IOrderRepository interface {
	Create(order domain.Order) error
	Get(id uuid.UUID) (domain.Order, error)
	ListByUser(userID string) ([]domain.Order, error)
	ListAll() ([]domain.Order, error)
}

// OrderRepository holds every order, whether it came from cart checkout
// or from bargain materialization. Materialized orders are ordinary
// records here; only PaymentMethod and BargainID tell them apart.
//
// Key layout mirrors the negotiation store:
//   - "order:id:{uuid}"                       -> record (protobuf)
//   - "order:user:{userID}:{ts_padded}:{uuid}" -> uuid
type OrderRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewOrderRepository(db *badger.DB, log *slog.Logger) OrderRepository {
	return OrderRepository{db: db, log: log}
}

func orderKey(id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("order:id:%s", id))
}

func orderUserIndexKey(o domain.Order) []byte {
	return []byte(fmt.Sprintf("order:user:%s:%019d:%s", o.UserID, o.PlacedAt.UnixNano(), o.ID))
}

func (r OrderRepository) Create(order domain.Order) error {
	bytes, err := proto.Marshal(lo.ToPtr(fromOrder(order)))
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(orderKey(order.ID), bytes); err != nil {
			return err
		}
		return txn.Set(orderUserIndexKey(order), []byte(order.ID.String()))
	})
}

func (r OrderRepository) Get(id uuid.UUID) (domain.Order, error) {
	var order domain.Order
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(orderKey(id))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: order %s", errors.ErrNotFound, id)
		}
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			var err error
			order, err = unmarshalOrder(value)
			return err
		})
	})
	return order, err
}

func (r OrderRepository) ListByUser(userID string) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(fmt.Sprintf("order:user:%s:", userID))
		seekKey := append(append([]byte{}, prefix...), 0xFF)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			var id uuid.UUID
			err := it.Item().Value(func(value []byte) error {
				parsed, err := uuid.Parse(string(value))
				id = parsed
				return err
			})
			if err != nil {
				return err
			}
			item, err := txn.Get(orderKey(id))
			if err != nil {
				return err
			}
			err = item.Value(func(value []byte) error {
				order, err := unmarshalOrder(value)
				if err != nil {
					return err
				}
				orders = append(orders, order)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return orders, err
}

func (r OrderRepository) ListAll() ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte("order:id:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				order, err := unmarshalOrder(value)
				if err != nil {
					return err
				}
				orders = append(orders, order)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].PlacedAt.After(orders[j].PlacedAt)
	})
	return orders, nil
}

func unmarshalOrder(value []byte) (domain.Order, error) {
	var record pb.Order
	if err := proto.Unmarshal(value, &record); err != nil {
		return domain.Order{}, err
	}
	return toOrder(&record)
}

func fromOrder(o domain.Order) pb.Order {
	return pb.Order{
		Id:     o.ID.String(),
		UserId: o.UserID,
		Items: lo.Map(o.Items, func(item domain.OrderItem, _ int) *pb.OrderItem {
			return &pb.OrderItem{
				MealId:   item.MealID,
				Quantity: int32(item.Quantity),
				Price:    item.Price,
			}
		}),
		TotalAmount:   o.TotalAmount,
		DeliveryFee:   o.DeliveryFee,
		Street:        o.DeliveryAddress.Street,
		City:          o.DeliveryAddress.City,
		Pincode:       o.DeliveryAddress.Pincode,
		Status:        string(o.Status),
		PaymentMethod: o.PaymentMethod,
		BargainId:     o.BargainID,
		PlacedAt:      o.PlacedAt.UnixNano(),
	}
}

func toOrder(record *pb.Order) (domain.Order, error) {
	parsedID, err := uuid.Parse(record.Id)
	if err != nil {
		return domain.Order{}, err
	}
	return domain.Order{
		ID:     parsedID,
		UserID: record.UserId,
		Items: lo.Map(record.Items, func(item *pb.OrderItem, _ int) domain.OrderItem {
			return domain.OrderItem{
				MealID:   item.MealId,
				Quantity: int(item.Quantity),
				Price:    item.Price,
			}
		}),
		TotalAmount: record.TotalAmount,
		DeliveryFee: record.DeliveryFee,
		DeliveryAddress: domain.DeliveryAddress{
			Street:  record.Street,
			City:    record.City,
			Pincode: record.Pincode,
		},
		Status:        domain.OrderStatus(record.Status),
		PaymentMethod: record.PaymentMethod,
		BargainID:     record.BargainId,
		PlacedAt:      time.Unix(0, record.PlacedAt).UTC(),
	}, nil
}
