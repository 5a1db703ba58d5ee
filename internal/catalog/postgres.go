package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/proraahi-core/server/internal/agent/model"
	errx "github.com/proraahi-core/server/internal/core/error"
	logx "github.com/proraahi-core/server/pkg/logger"
)

const defaultLimit = 20

type table struct {
	name    string
	columns string
	// filter field -> column
	filters map[string]string
	scan    func(*sql.Rows) (model.Record, error)
}

var tables = map[model.CatalogKind]table{
	model.KindTransport: {
		name:    "transportation",
		columns: "id, transport_type, name, from_location, to_location, departure_time, arrival_time, class_type, price, rating",
		filters: map[string]string{"from": "from_location", "to": "to_location"},
		scan:    scanTransport,
	},
	model.KindLodging: {
		name:    "hotels",
		columns: "id, name, location, category, amenities, description, price, rating",
		filters: map[string]string{"location": "location", "category": "category"},
		scan:    scanLodging,
	},
	model.KindGuide: {
		name:    "guides",
		columns: "id, name, location, specialties, languages, experience_years, availability_status, total_reviews, description, price, rating",
		filters: map[string]string{"location": "location", "specialty": "specialties"},
		scan:    scanGuide,
	},
	model.KindActivity: {
		name:    "activities",
		columns: "id, name, category, location, duration, group_size, highlights, description, price, rating",
		filters: map[string]string{"location": "location", "category": "category"},
		scan:    scanActivity,
	},
}

// PostgresStore queries the catalog tables. List columns hold comma-separated text.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Query(ctx context.Context, kind model.CatalogKind, f Filter) ([]model.Record, error) {
	t, ok := tables[kind]
	if !ok {
		return nil, errx.BadRequest(fmt.Errorf("unknown catalog kind %q", kind))
	}

	query, args := buildQuery(t, f)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		logx.Error().Err(err).Str("table", t.name).Msg("catalog query failed")
		return nil, errx.WrapDB(err)
	}
	defer rows.Close()

	records := make([]model.Record, 0)
	for rows.Next() {
		r, err := t.scan(rows)
		if err != nil {
			return nil, errx.WrapDB(fmt.Errorf("scan %s: %w", t.name, err))
		}
		r.Kind = kind
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errx.WrapDB(err)
	}
	return records, nil
}

func buildQuery(t table, f Filter) (string, []any) {
	var (
		where []string
		args  []any
	)
	// Matching is case-insensitive, like MemoryStore.
	add := func(field, format string, v any) {
		col, ok := t.filters[field]
		if !ok {
			return
		}
		args = append(args, v)
		where = append(where, fmt.Sprintf(format, col, len(args)))
	}
	const equal = "lower(%s) = lower($%d)"
	if f.FromLocation != "" {
		add("from", equal, f.FromLocation)
	}
	if f.ToLocation != "" {
		add("to", equal, f.ToLocation)
	}
	if f.Location != "" {
		add("location", equal, f.Location)
	}
	if f.Category != "" {
		add("category", equal, f.Category)
	}
	if f.Specialty != "" {
		add("specialty", "%s ILIKE $%d", "%"+likeEscaper.Replace(f.Specialty)+"%")
	}

	var b strings.Builder
	b.WriteString("SELECT " + t.columns + " FROM " + t.name)
	if len(where) > 0 {
		b.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	limit := f.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	fmt.Fprintf(&b, " ORDER BY rating DESC, id LIMIT %d", limit)
	return b.String(), args
}

// Backslash is the default LIKE escape character in Postgres.
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func scanTransport(rows *sql.Rows) (model.Record, error) {
	var r model.Record
	var tt, dep, arr, class sql.NullString
	err := rows.Scan(&r.ID, &tt, &r.Name, &r.From, &r.To, &dep, &arr, &class, &r.Price, &r.Rating)
	r.TransportType, r.Departure, r.Arrival, r.ClassType = tt.String, dep.String, arr.String, class.String
	r.Location = r.To
	return r, err
}

func scanLodging(rows *sql.Rows) (model.Record, error) {
	var r model.Record
	var category, amenities, desc sql.NullString
	err := rows.Scan(&r.ID, &r.Name, &r.Location, &category, &amenities, &desc, &r.Price, &r.Rating)
	r.Category, r.Amenities, r.Description = category.String, splitList(amenities.String), desc.String
	return r, err
}

func scanGuide(rows *sql.Rows) (model.Record, error) {
	var r model.Record
	var specialties, languages, availability, desc sql.NullString
	var years, reviews sql.NullInt64
	err := rows.Scan(&r.ID, &r.Name, &r.Location, &specialties, &languages, &years, &availability, &reviews, &desc, &r.Price, &r.Rating)
	r.Specialties = splitList(specialties.String)
	r.Languages = splitList(languages.String)
	r.ExperienceYears = int(years.Int64)
	r.Availability = availability.String
	r.TotalReviews = int(reviews.Int64)
	r.Description = desc.String
	return r, err
}

func scanActivity(rows *sql.Rows) (model.Record, error) {
	var r model.Record
	var category, duration, group, highlights, desc sql.NullString
	err := rows.Scan(&r.ID, &r.Name, &category, &r.Location, &duration, &group, &highlights, &desc, &r.Price, &r.Rating)
	r.Category, r.Duration, r.GroupSize = category.String, duration.String, group.String
	r.Highlights, r.Description = splitList(highlights.String), desc.String
	return r, err
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

var _ Store = (*PostgresStore)(nil)
