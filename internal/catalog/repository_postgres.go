package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

// PostgresRepository persists the aggregate across the five bakery tables
// using a full-replace strategy: the bakery row is updated in place and each
// collection is deleted then reinserted. The whole save runs in one
// transaction so a failing step never leaves a half-written catalog behind.
type PostgresRepository struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

const (
	updateBakeryQuery = `
		UPDATE bakeries
		SET confectionery_name = $1, settings = $2, updated_at = $3
		WHERE id = $4
	`
	deleteProductsQuery = `DELETE FROM products WHERE bakery_id = $1`
	insertProductQuery  = `
		INSERT INTO products (id, bakery_id, name, price, description, image_url, sizes, tags, show_image, product_order)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`
	deleteExtrasQuery = `DELETE FROM extras WHERE bakery_id = $1`
	insertExtraQuery  = `
		INSERT INTO extras (id, bakery_id, name, description, image_url, price, extra_order)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
	`
	deleteSectionsQuery = `DELETE FROM sections WHERE bakery_id = $1`
	insertSectionQuery  = `
		INSERT INTO sections (id, bakery_id, name, visible, section_order, product_ids)
		VALUES ($1,$2,$3,$4,$5,$6)
	`
	deleteTagsQuery = `DELETE FROM tags WHERE bakery_id = $1`
	insertTagQuery  = `
		INSERT INTO tags (id, bakery_id, name, color, emoji)
		VALUES ($1,$2,$3,$4,$5)
	`

	loadBakeryQuery   = `SELECT confectionery_name, settings FROM bakeries WHERE id = $1`
	loadProductsQuery = `
		SELECT id, name, price, description, image_url, sizes, tags, show_image, product_order
		FROM products
		WHERE bakery_id = $1
		ORDER BY product_order
	`
	loadExtrasQuery = `
		SELECT id, name, description, image_url, price, extra_order
		FROM extras
		WHERE bakery_id = $1
		ORDER BY extra_order
	`
	loadSectionsQuery = `
		SELECT id, name, visible, section_order, product_ids
		FROM sections
		WHERE bakery_id = $1
		ORDER BY section_order
	`
	loadTagsQuery = `SELECT id, name, color, emoji FROM tags WHERE bakery_id = $1`
)

func NewPostgresRepository(db *sql.DB, log *zap.SugaredLogger) *PostgresRepository {
	return &PostgresRepository{db: db, log: log}
}

// Save replaces the bakery's whole catalog. Step order mirrors the admin
// save flow: bakery row, then products, extras, sections, tags. Product,
// section and tag ids come from the client and are stored as-is so the
// cross-references between tables stay valid after a reload; extras get a
// fresh id on every save.
func (r *PostgresRepository) Save(ctx context.Context, bakeryID string, data Data) error {
	if bakeryID == "" {
		return ErrNotFound
	}

	settingsJSON, err := json.Marshal(data.Settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.ExecContext(ctx, updateBakeryQuery, data.Settings.BrandName, settingsJSON, now, bakeryID); err != nil {
		r.log.Errorw("save: bakery update failed", "bakeryId", bakeryID, "err", err)
		return fmt.Errorf("update bakery: %w", err)
	}

	if _, err := tx.ExecContext(ctx, deleteProductsQuery, bakeryID); err != nil {
		r.log.Errorw("save: delete products failed", "bakeryId", bakeryID, "err", err)
		return fmt.Errorf("delete products: %w", err)
	}
	for _, p := range data.Products {
		sizesJSON, err := json.Marshal(p.Sizes)
		if err != nil {
			return fmt.Errorf("marshal sizes for product %s: %w", p.ID, err)
		}
		if _, err := tx.ExecContext(ctx, insertProductQuery,
			p.ID, bakeryID, p.Name, flatPrice(p), p.Description, p.Image,
			sizesJSON, pq.Array(p.Tags), p.ShowImage, p.Order,
		); err != nil {
			r.log.Errorw("save: insert product failed", "bakeryId", bakeryID, "productId", p.ID, "err", err)
			return fmt.Errorf("insert product %s: %w", p.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, deleteExtrasQuery, bakeryID); err != nil {
		r.log.Errorw("save: delete extras failed", "bakeryId", bakeryID, "err", err)
		return fmt.Errorf("delete extras: %w", err)
	}
	for _, e := range data.Extras {
		if _, err := tx.ExecContext(ctx, insertExtraQuery,
			uuid.NewString(), bakeryID, e.Name, e.Description, e.Image, e.Price, e.Order,
		); err != nil {
			r.log.Errorw("save: insert extra failed", "bakeryId", bakeryID, "err", err)
			return fmt.Errorf("insert extra %q: %w", e.Name, err)
		}
	}

	if _, err := tx.ExecContext(ctx, deleteSectionsQuery, bakeryID); err != nil {
		r.log.Errorw("save: delete sections failed", "bakeryId", bakeryID, "err", err)
		return fmt.Errorf("delete sections: %w", err)
	}
	for _, s := range data.Sections {
		if _, err := tx.ExecContext(ctx, insertSectionQuery,
			s.ID, bakeryID, s.Name, s.Visible, s.Order, pq.Array(s.ProductIDs),
		); err != nil {
			r.log.Errorw("save: insert section failed", "bakeryId", bakeryID, "sectionId", s.ID, "err", err)
			return fmt.Errorf("insert section %s: %w", s.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, deleteTagsQuery, bakeryID); err != nil {
		r.log.Errorw("save: delete tags failed", "bakeryId", bakeryID, "err", err)
		return fmt.Errorf("delete tags: %w", err)
	}
	for _, t := range data.Tags {
		if _, err := tx.ExecContext(ctx, insertTagQuery,
			t.ID, bakeryID, t.Name, t.Color, t.Emoji,
		); err != nil {
			r.log.Errorw("save: insert tag failed", "bakeryId", bakeryID, "tagId", t.ID, "err", err)
			return fmt.Errorf("insert tag %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}

	r.log.Infow("catalog saved",
		"bakeryId", bakeryID,
		"products", len(data.Products),
		"sections", len(data.Sections),
		"extras", len(data.Extras),
		"tags", len(data.Tags),
	)
	return nil
}

// Load reconstructs the aggregate from the five tables. A missing bakery is
// the only hard failure; a collection query that errors is logged and comes
// back empty so one flaky read never blanks the whole page.
func (r *PostgresRepository) Load(ctx context.Context, bakeryID string) (Data, error) {
	var (
		name         sql.NullString
		settingsBlob []byte
	)
	err := r.db.QueryRowContext(ctx, loadBakeryQuery, bakeryID).Scan(&name, &settingsBlob)
	if err != nil {
		if err == sql.ErrNoRows {
			return Data{}, ErrNotFound
		}
		return Data{}, fmt.Errorf("load bakery: %w", err)
	}

	data := Data{
		Products: []Product{},
		Sections: []Section{},
		Extras:   []Extra{},
		Tags:     []Tag{},
	}

	if len(settingsBlob) > 0 && string(settingsBlob) != "{}" {
		// stored blob wins, even when sparse
		if err := json.Unmarshal(settingsBlob, &data.Settings); err != nil {
			r.log.Warnw("load: bad settings blob, using fallback", "bakeryId", bakeryID, "err", err)
			data.Settings = FallbackSettings(name.String)
		}
	} else {
		data.Settings = FallbackSettings(name.String)
	}

	data.Products = r.loadProducts(ctx, bakeryID)
	data.Extras = r.loadExtras(ctx, bakeryID)
	data.Sections = r.loadSections(ctx, bakeryID)
	data.Tags = r.loadTags(ctx, bakeryID)

	return data, nil
}

func (r *PostgresRepository) loadProducts(ctx context.Context, bakeryID string) []Product {
	out := []Product{}
	rows, err := r.db.QueryContext(ctx, loadProductsQuery, bakeryID)
	if err != nil {
		r.log.Errorw("load: products query failed", "bakeryId", bakeryID, "err", err)
		return out
	}
	defer rows.Close()

	for rows.Next() {
		var (
			p         Product
			price     float64
			desc      sql.NullString
			img       sql.NullString
			sizesJSON []byte
			tags      pq.StringArray
			showImage sql.NullBool
		)
		if err := rows.Scan(&p.ID, &p.Name, &price, &desc, &img, &sizesJSON, &tags, &showImage, &p.Order); err != nil {
			r.log.Warnw("load: skipping bad product row", "bakeryId", bakeryID, "err", err)
			continue
		}
		p.Description = desc.String
		p.Image = img.String
		p.ShowImage = !showImage.Valid || showImage.Bool
		p.Tags = []string(tags)
		if p.Tags == nil {
			p.Tags = []string{}
		}
		if len(sizesJSON) > 0 {
			if err := json.Unmarshal(sizesJSON, &p.Sizes); err != nil {
				r.log.Warnw("load: bad sizes blob", "bakeryId", bakeryID, "productId", p.ID, "err", err)
				p.Sizes = nil
			}
		}
		if len(p.Sizes) == 0 {
			// rows written before sizes existed carry only the flat price
			p.Sizes = []Size{{ID: "default", Name: "Padrão", Price: price}}
		}
		out = append(out, p)
	}
	return out
}

func (r *PostgresRepository) loadExtras(ctx context.Context, bakeryID string) []Extra {
	out := []Extra{}
	rows, err := r.db.QueryContext(ctx, loadExtrasQuery, bakeryID)
	if err != nil {
		r.log.Errorw("load: extras query failed", "bakeryId", bakeryID, "err", err)
		return out
	}
	defer rows.Close()

	for rows.Next() {
		var (
			e    Extra
			desc sql.NullString
			img  sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Name, &desc, &img, &e.Price, &e.Order); err != nil {
			r.log.Warnw("load: skipping bad extra row", "bakeryId", bakeryID, "err", err)
			continue
		}
		e.Description = desc.String
		e.Image = img.String
		out = append(out, e)
	}
	return out
}

func (r *PostgresRepository) loadSections(ctx context.Context, bakeryID string) []Section {
	out := []Section{}
	rows, err := r.db.QueryContext(ctx, loadSectionsQuery, bakeryID)
	if err != nil {
		r.log.Errorw("load: sections query failed", "bakeryId", bakeryID, "err", err)
		return out
	}
	defer rows.Close()

	for rows.Next() {
		var (
			s       Section
			visible sql.NullBool
			ids     pq.StringArray
		)
		if err := rows.Scan(&s.ID, &s.Name, &visible, &s.Order, &ids); err != nil {
			r.log.Warnw("load: skipping bad section row", "bakeryId", bakeryID, "err", err)
			continue
		}
		s.Visible = !visible.Valid || visible.Bool
		s.ProductIDs = []string(ids)
		if s.ProductIDs == nil {
			s.ProductIDs = []string{}
		}
		out = append(out, s)
	}
	return out
}

func (r *PostgresRepository) loadTags(ctx context.Context, bakeryID string) []Tag {
	out := []Tag{}
	rows, err := r.db.QueryContext(ctx, loadTagsQuery, bakeryID)
	if err != nil {
		r.log.Errorw("load: tags query failed", "bakeryId", bakeryID, "err", err)
		return out
	}
	defer rows.Close()

	for rows.Next() {
		var (
			t     Tag
			emoji sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &emoji); err != nil {
			r.log.Warnw("load: skipping bad tag row", "bakeryId", bakeryID, "err", err)
			continue
		}
		t.Emoji = emoji.String
		out = append(out, t)
	}
	return out
}

// flatPrice is the denormalized price column: the first size's price, the
// same value the pre-sizes schema stored.
func flatPrice(p Product) float64 {
	if len(p.Sizes) > 0 {
		return p.Sizes[0].Price
	}
	return 0
}
