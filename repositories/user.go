//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"

	"mealmatch/errors"
	pb "mealmatch/proto/storage"
)

type IUserRepository interface {
	CreateUser(email, hashedPassword string) (string, error)
	GetUserByEmail(email string) (User, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

// User is the repository-level representation of an account. The
// negotiation core never touches it; only the auth service does.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
}

func userKey(email string) []byte {
	return []byte(fmt.Sprintf("user:%s", email))
}

// CreateUser persists a new account keyed by email and returns the
// generated id. The existence check and the write share one transaction
// so two concurrent registrations cannot both succeed.
func (u UserRepository) CreateUser(email, hashedPassword string) (string, error) {
	newID := uuid.NewString()
	record := &pb.User{
		Id:           newID,
		Email:        email,
		PasswordHash: hashedPassword,
		Roles:        []string{"user"},
		CreatedAt:    time.Now().Unix(),
	}

	data, err := proto.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal failed: %w", err)
	}

	err = u.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(userKey(email)); err == nil {
			return errors.ErrUserAlreadyExists
		}
		return txn.Set(userKey(email), data)
	})
	if err != nil {
		return "", err
	}
	return newID, nil
}

func (u UserRepository) GetUserByEmail(email string) (User, error) {
	var record pb.User
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(email))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: user %s", errors.ErrNotFound, email)
		}
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return proto.Unmarshal(value, &record)
		})
	})
	if err != nil {
		return User{}, err
	}
	return User{
		ID:           record.Id,
		Email:        record.Email,
		PasswordHash: record.PasswordHash,
		Roles:        record.Roles,
		CreatedAt:    time.Unix(record.CreatedAt, 0).UTC(),
	}, nil
}
