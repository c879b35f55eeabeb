package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"math"
	"path/filepath"
	"strings"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/rpg-gearset/internal/entities/gear"
	"github.com/KirkDiggler/rpg-gearset/internal/errors"
	"github.com/KirkDiggler/rpg-gearset/internal/repositories/catalog/migrations"
)

// SQLiteConfig contains configuration for the SQLite catalog repository.
type SQLiteConfig struct {
	// Path is the database file. ":memory:" opens a private in-memory store.
	Path string
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("path", strings.TrimSpace(cfg.Path), vb)
	return vb.Build()
}

// SQLiteRepository stores catalogs as rows in a local SQLite database.
type SQLiteRepository struct {
	db *sql.DB
}

var _ Repository = (*SQLiteRepository)(nil)

// NewSQLite opens the database at cfg.Path and applies pending migrations.
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dsn := cfg.Path
	if dsn != ":memory:" {
		dsn = filepath.Clean(dsn) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite catalog %s", cfg.Path)
	}
	// A second connection to ":memory:" would see an empty database.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to ping sqlite catalog %s", cfg.Path)
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteRepository{db: db}, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.FS,
		goose.WithDisableGlobalRegistry(true),
		goose.WithSlog(slog.Default().With("component", "goose")),
	)
	if err != nil {
		return errors.Wrap(err, "failed to load catalog migrations")
	}
	if _, err := provider.Up(ctx); err != nil {
		return errors.Wrap(err, "failed to run catalog migrations")
	}
	return nil
}

// Close closes the database handle.
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

const (
	upsertCatalogSQL = `INSERT INTO catalogs (name) VALUES (?) ON CONFLICT (name) DO NOTHING`
	existsCatalogSQL = `SELECT 1 FROM catalogs WHERE name = ?`
	deleteCatalogSQL = `DELETE FROM catalog_items WHERE catalog = ?`
	insertItemSQL    = `INSERT INTO catalog_items (
		catalog, position, name, locations, level, hp, mana, hr, dr, ss, sbr, spet, ac_apply,
		align_restrictions, class_restrictions
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	selectItemsSQL = `SELECT
		position, name, locations, level, hp, mana, hr, dr, ss, sbr, spet, ac_apply,
		align_restrictions, class_restrictions
	FROM catalog_items WHERE catalog = ? ORDER BY position`
	selectNamesSQL = `SELECT name FROM catalogs ORDER BY name`
)

func (r *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	var exists int
	err := r.db.QueryRowContext(ctx, existsCatalogSQL, input.Name).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFoundf("catalog %s not found", input.Name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to look up catalog %s", input.Name)
	}

	rows, err := r.db.QueryContext(ctx, selectItemsSQL, input.Name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query catalog %s", input.Name)
	}
	defer func() { _ = rows.Close() }()

	items := []gear.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "stored catalog %s is invalid", input.Name)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog %s", input.Name)
	}
	if err := Validate(items); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "stored catalog %s is invalid", input.Name)
	}

	return &GetOutput{
		Name:  input.Name,
		Items: items,
	}, nil
}

// Put replaces the catalog in one transaction. An empty catalog is kept as a
// name with no items.
func (r *SQLiteRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}
	if err := Validate(input.Items); err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin catalog transaction")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, upsertCatalogSQL, input.Name); err != nil {
		return nil, errors.Wrapf(err, "failed to register catalog %s", input.Name)
	}
	if _, err := tx.ExecContext(ctx, deleteCatalogSQL, input.Name); err != nil {
		return nil, errors.Wrapf(err, "failed to clear catalog %s", input.Name)
	}

	stmt, err := tx.PrepareContext(ctx, insertItemSQL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to prepare catalog insert")
	}
	defer func() { _ = stmt.Close() }()

	for i := range input.Items {
		item := &input.Items[i]
		locations, err := json.Marshal(item.Locations)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode locations of %s", item.Name)
		}
		aligns, err := marshalList(item.AlignRestrictions)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode align restrictions of %s", item.Name)
		}
		classes, err := marshalList(item.ClassRestrictions)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode class restrictions of %s", item.Name)
		}

		_, err = stmt.ExecContext(ctx,
			input.Name, i, item.Name, string(locations), int64(item.Level),
			int64(item.HP), int64(item.Mana), int64(item.HitRoll), int64(item.DamageRoll),
			int64(item.SpellSave), int64(item.SaveVsBreath), int64(item.SpellEffect), int64(item.ACApply),
			aligns, classes,
		)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to insert %s into catalog %s", item.Name, input.Name)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrapf(err, "failed to commit catalog %s", input.Name)
	}

	return &PutOutput{
		Name:  input.Name,
		Count: len(input.Items),
	}, nil
}

func (r *SQLiteRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	rows, err := r.db.QueryContext(ctx, selectNamesSQL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list catalogs")
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(err, "failed to scan catalog name")
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to list catalogs")
	}

	return &ListOutput{Names: names}, nil
}

func marshalList[T any](list []T) (string, error) {
	if list == nil {
		list = []T{}
	}
	data, err := json.Marshal(list)
	return string(data), err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (gear.Item, error) {
	var (
		item                       gear.Item
		position                   int64
		locations, aligns, classes string
		level                      int64
		stats                      [8]int64
	)

	err := row.Scan(
		&position, &item.Name, &locations, &level,
		&stats[0], &stats[1], &stats[2], &stats[3], &stats[4], &stats[5], &stats[6], &stats[7],
		&aligns, &classes,
	)
	if err != nil {
		return item, err
	}

	if level < 0 || level > math.MaxUint8 {
		return item, errors.InvalidArgumentf("level %d of %s is out of range", level, item.Name)
	}
	item.Level = uint8(level)

	targets := []*int8{
		&item.HP, &item.Mana, &item.HitRoll, &item.DamageRoll,
		&item.SpellSave, &item.SaveVsBreath, &item.SpellEffect, &item.ACApply,
	}
	for i, v := range stats {
		if v < math.MinInt8 || v > math.MaxInt8 {
			return item, errors.InvalidArgumentf("stat %d of %s is out of range: %d", i, item.Name, v)
		}
		*targets[i] = int8(v)
	}

	if err := json.Unmarshal([]byte(locations), &item.Locations); err != nil {
		return item, err
	}
	if err := json.Unmarshal([]byte(aligns), &item.AlignRestrictions); err != nil {
		return item, err
	}
	if err := json.Unmarshal([]byte(classes), &item.ClassRestrictions); err != nil {
		return item, err
	}
	if len(item.AlignRestrictions) == 0 {
		item.AlignRestrictions = nil
	}
	if len(item.ClassRestrictions) == 0 {
		item.ClassRestrictions = nil
	}

	return item, nil
}
