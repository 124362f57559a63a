package profile

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/jask/onboarded/internal/database"
	"github.com/jask/onboarded/internal/database/repository"
)

// SQLStore keeps the profile in the sqlite settings table.
type SQLStore struct {
	db       *sql.DB
	settings *repository.SettingsRepo
	log      *zap.Logger
}

var _ Store = (*SQLStore)(nil)

func NewSQLStore(db *sql.DB, log *zap.Logger) *SQLStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &SQLStore{db: db, settings: repository.NewSettingsRepo(db), log: log}
}

// Read loads all four keys in one transaction so a concurrent writer can never
// be observed half way.
func (s *SQLStore) Read(ctx context.Context) (Profile, error) {
	var p Profile
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repo := s.settings.WithTx(tx)
		values := map[string]*string{}
		for _, key := range []string{KeyName, KeyAge, KeyGender, KeySignedIn} {
			row, err := repo.Get(ctx, key)
			if err != nil {
				return fmt.Errorf("read %s: %w", key, err)
			}
			if row != nil {
				v := row.Value
				values[key] = &v
			}
		}
		p.Name = values[KeyName]
		p.Gender = values[KeyGender]
		if raw := values[KeyAge]; raw != nil {
			if age, err := strconv.Atoi(*raw); err == nil {
				p.Age = &age
			} else {
				s.log.Warn("ignoring unparsable age", zap.String("value", *raw))
			}
		}
		if raw := values[KeySignedIn]; raw != nil {
			p.SignedIn, _ = strconv.ParseBool(*raw)
		}
		return nil
	})
	if err != nil {
		return Profile{}, err
	}
	if p.SignedIn && !p.Complete() {
		s.log.Warn("signed_in set without a complete profile; treating as signed out")
		p.SignedIn = false
	}
	return p, nil
}

func (s *SQLStore) WriteProfile(ctx context.Context, name string, age int, gender string) error {
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repo := s.settings.WithTx(tx)
		pairs := [][2]string{
			{KeyName, name},
			{KeyAge, strconv.Itoa(age)},
			{KeyGender, gender},
			{KeySignedIn, strconv.FormatBool(true)},
		}
		for _, kv := range pairs {
			if err := repo.Set(ctx, kv[0], kv[1]); err != nil {
				return fmt.Errorf("write %s: %w", kv[0], err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info("profile written", zap.Int("age", age), zap.String("gender", gender))
	return nil
}

func (s *SQLStore) ClearProfile(ctx context.Context) error {
	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		repo := s.settings.WithTx(tx)
		if err := repo.Delete(ctx, KeyName, KeyAge, KeyGender); err != nil {
			return fmt.Errorf("clear profile: %w", err)
		}
		if err := repo.Set(ctx, KeySignedIn, strconv.FormatBool(false)); err != nil {
			return fmt.Errorf("write %s: %w", KeySignedIn, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info("profile cleared")
	return nil
}
