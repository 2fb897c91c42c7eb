package user

import (
	"fmt"
	"strconv"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/lixenwraith/threat-shooter/config"
)

// userRow is one user; the best score is stored as a JSON column
type userRow struct {
	ID        string `gorm:"primaryKey"`
	Seq       int    `gorm:"index"` // Insertion order
	Name      string `gorm:"index"`
	BestScore datatypes.JSONType[*Score]
}

func (userRow) TableName() string { return "users" }

// metaRow holds document-level values (id counter, current user)
type metaRow struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

func (metaRow) TableName() string { return "user_meta" }

const (
	metaIDCount     = "idCount"
	metaCurrentUser = "currentUser"
)

// GormBackend stores users in a SQL database through GORM
type GormBackend struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewGormBackend wraps an open database and migrates the schema
func NewGormBackend(db *gorm.DB, log zerolog.Logger) (*GormBackend, error) {
	if err := db.AutoMigrate(&userRow{}, &metaRow{}); err != nil {
		return nil, errors.Wrap(err, "migrate user tables")
	}
	return &GormBackend{db: db, log: log}, nil
}

// NewSQLiteBackend opens (creating if needed) a SQLite database file
// An empty path selects a private in-memory database
func NewSQLiteBackend(path string, log zerolog.Logger) (*GormBackend, error) {
	dsn := path
	if dsn == "" {
		dsn = "file::memory:"
	}
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open sqlite %q", path)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "access sql interface")
	}
	sqlDB.SetMaxOpenConns(1)

	log.Info().Str("path", path).Msg("using sqlite user store")
	return NewGormBackend(db, log)
}

// NewPostgresBackend connects to PostgreSQL and validates the connection
func NewPostgresBackend(cfg config.PostgresConfig, log zerolog.Logger) (*GormBackend, error) {
	dsn := fmt.Sprintf(`host=%s port=%d user=%s password=%s dbname=%s sslmode=%s`,
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.Database, cfg.SSLMode)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrap(err, "connect to postgres")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "access sql interface")
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, errors.Wrap(err, "validate postgres connection")
	}

	log.Info().Str("host", cfg.Host).Str("database", cfg.Database).Msg("using postgres user store")
	return NewGormBackend(db, log)
}

func (b *GormBackend) Load() (*Document, error) {
	var rows []userRow
	if err := b.db.Order("seq").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "load users")
	}
	var meta []metaRow
	if err := b.db.Find(&meta).Error; err != nil {
		return nil, errors.Wrap(err, "load user meta")
	}

	doc := &Document{Users: make([]User, 0, len(rows))}
	for _, r := range rows {
		doc.Users = append(doc.Users, User{ID: r.ID, Name: r.Name, BestScore: r.BestScore.Data()})
	}
	for _, m := range meta {
		switch m.Key {
		case metaIDCount:
			n, err := strconv.Atoi(m.Value)
			if err != nil {
				return nil, errors.Wrapf(err, "parse %s", metaIDCount)
			}
			doc.IDCount = n
		case metaCurrentUser:
			doc.CurrentUser = m.Value
		}
	}
	return doc, nil
}

func (b *GormBackend) Save(doc *Document) error {
	rows := make([]userRow, len(doc.Users))
	for i, u := range doc.Users {
		rows[i] = userRow{ID: u.ID, Seq: i, Name: u.Name, BestScore: datatypes.NewJSONType(u.BestScore)}
	}
	meta := []metaRow{
		{Key: metaIDCount, Value: strconv.Itoa(doc.IDCount)},
		{Key: metaCurrentUser, Value: doc.CurrentUser},
	}

	err := b.db.Transaction(func(tx *gorm.DB) error {
		if len(rows) > 0 {
			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rows).Error; err != nil {
				return err
			}
		}
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&meta).Error
	})
	return errors.Wrap(err, "save users")
}

func (b *GormBackend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return errors.Wrap(err, "access sql interface")
	}
	return sqlDB.Close()
}
