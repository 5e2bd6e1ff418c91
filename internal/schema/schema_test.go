package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Surajsachintha/itams-haci-project/internal/entity"
	"github.com/Surajsachintha/itams-haci-project/internal/schema"
)

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		table schema.Table
		errFn require.ErrorAssertionFunc
	}{
		{
			name: "valid",
			table: schema.Table{
				Name:       "code_things",
				PrimaryKey: schema.Column{Name: "id", Kind: schema.KindInt},
				Columns:    []schema.Column{{Name: "thing_name", Kind: schema.KindText}},
			},
			errFn: require.NoError,
		},
		{
			name: "injection in table name",
			table: schema.Table{
				Name:       "code_things; DROP TABLE dms_users",
				PrimaryKey: schema.Column{Name: "id", Kind: schema.KindInt},
			},
			errFn: require.Error,
		},
		{
			name: "quoted column name",
			table: schema.Table{
				Name:       "code_things",
				PrimaryKey: schema.Column{Name: "id", Kind: schema.KindInt},
				Columns:    []schema.Column{{Name: `"name"`, Kind: schema.KindText}},
			},
			errFn: require.Error,
		},
		{
			name: "duplicate column",
			table: schema.Table{
				Name:       "code_things",
				PrimaryKey: schema.Column{Name: "id", Kind: schema.KindInt},
				Columns: []schema.Column{
					{Name: "thing_name", Kind: schema.KindText},
					{Name: "thing_name", Kind: schema.KindText},
				},
			},
			errFn: require.Error,
		},
		{
			name: "column without kind",
			table: schema.Table{
				Name:       "code_things",
				PrimaryKey: schema.Column{Name: "id", Kind: schema.KindInt},
				Columns:    []schema.Column{{Name: "thing_name"}},
			},
			errFn: require.Error,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			_, err := schema.NewCatalog(test.table)
			test.errFn(t, err)
		})
	}
}

func TestCodeTables(t *testing.T) {
	t.Parallel()

	c := schema.CodeTables()

	vendors, ok := c.Table("code_vendors")
	require.True(t, ok)
	require.Equal(t, []string{"id", "vendor_name", "contact_number", "email", "address"}, vendors.ColumnNames())

	stations, ok := c.Table("code_stations")
	require.True(t, ok)
	require.Equal(t, "station_id", stations.PrimaryKey.Name)

	meta, ok := c.Table("code_codetable")
	require.True(t, ok)
	require.True(t, meta.ReadOnly)

	_, ok = c.Table("dms_users")
	require.False(t, ok)
}

func TestTable_ValidateRecord(t *testing.T) {
	t.Parallel()

	table, ok := schema.CodeTables().Table("code_models")
	require.True(t, ok)

	tests := []struct {
		name  string
		rec   entity.Record
		mode  schema.Mode
		want  schema.Values
		errFn require.ErrorAssertionFunc
	}{
		{
			name: "insert with json numbers",
			rec: entity.Record{
				"model_name":      "ThinkPad T14",
				"brand_id":        json.Number("3"),
				"device_types_id": float64(2),
			},
			mode: schema.ModeInsert,
			want: schema.Values{
				Columns: []string{"brand_id", "device_types_id", "model_name"},
				Args:    []any{int64(3), int64(2), "ThinkPad T14"},
			},
			errFn: require.NoError,
		},
		{
			name:  "insert missing required column",
			rec:   entity.Record{"brand_id": json.Number("3")},
			mode:  schema.ModeInsert,
			errFn: require.Error,
		},
		{
			name: "update without required column",
			rec:  entity.Record{"brand_id": nil},
			mode: schema.ModeUpdate,
			want: schema.Values{
				Columns: []string{"brand_id"},
				Args:    []any{nil},
			},
			errFn: require.NoError,
		},
		{
			name:  "unknown column",
			rec:   entity.Record{"model_name": "x", "is_admin": true},
			mode:  schema.ModeInsert,
			errFn: require.Error,
		},
		{
			name:  "primary key in record",
			rec:   entity.Record{"id": json.Number("7"), "model_name": "x"},
			mode:  schema.ModeUpdate,
			errFn: require.Error,
		},
		{
			name:  "wrong type",
			rec:   entity.Record{"model_name": true},
			mode:  schema.ModeUpdate,
			errFn: require.Error,
		},
		{
			name:  "fractional id",
			rec:   entity.Record{"brand_id": 1.5},
			mode:  schema.ModeUpdate,
			errFn: require.Error,
		},
		{
			name:  "empty record",
			rec:   entity.Record{},
			mode:  schema.ModeUpdate,
			errFn: require.Error,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := table.ValidateRecord(test.rec, test.mode)
			test.errFn(t, err)

			if err != nil {
				require.ErrorIs(t, err, entity.ErrValidation)

				var vErr *schema.ValidationError
				require.ErrorAs(t, err, &vErr)
				require.Equal(t, "code_models", vErr.Table)

				return
			}

			require.Equal(t, test.want, got)
		})
	}
}

func TestColumn_CoerceText(t *testing.T) {
	t.Parallel()

	col := schema.Column{Name: "vendor_name", Kind: schema.KindText, MaxLen: 5, Required: true}

	v, err := col.Coerce("Acme")
	require.NoError(t, err)
	require.Equal(t, "Acme", v)

	_, err = col.Coerce("Acme Corporation")
	require.Error(t, err)

	_, err = col.Coerce("   ")
	require.Error(t, err)

	_, err = col.Coerce(nil)
	require.Error(t, err)
}

func TestTable_ValidateKey(t *testing.T) {
	t.Parallel()

	table, ok := schema.CodeTables().Table("code_vendors")
	require.True(t, ok)

	id, err := table.ValidateKey(json.Number("12"))
	require.NoError(t, err)
	require.Equal(t, int64(12), id)

	id, err = table.ValidateKey("12")
	require.NoError(t, err)
	require.Equal(t, int64(12), id)

	_, err = table.ValidateKey("12 OR 1=1")
	require.ErrorIs(t, err, entity.ErrValidation)

	_, err = table.ValidateKey(nil)
	require.ErrorIs(t, err, entity.ErrValidation)
}

func TestTable_ValidateUpdate(t *testing.T) {
	t.Parallel()

	table, ok := schema.CodeTables().Table("code_vendors")
	require.True(t, ok)

	t.Run("whole row sent back", func(t *testing.T) {
		t.Parallel()

		got, err := table.ValidateUpdate(int64(3), entity.Record{
			"id":             json.Number("3"),
			"vendor_name":    "Acme",
			"contact_number": nil,
			"email":          nil,
			"address":        nil,
		})
		require.NoError(t, err)
		require.Equal(t, schema.Values{
			Columns: []string{"address", "contact_number", "email", "vendor_name"},
			Args:    []any{nil, nil, nil, "Acme"},
		}, got)
	})

	t.Run("id as string", func(t *testing.T) {
		t.Parallel()

		got, err := table.ValidateUpdate(int64(3), entity.Record{"id": "3", "email": "sales@acme.test"})
		require.NoError(t, err)
		require.Equal(t, []string{"email"}, got.Columns)
	})

	t.Run("other row id", func(t *testing.T) {
		t.Parallel()

		_, err := table.ValidateUpdate(int64(3), entity.Record{"id": json.Number("4"), "vendor_name": "Acme"})
		require.ErrorIs(t, err, entity.ErrValidation)
	})

	t.Run("only the id", func(t *testing.T) {
		t.Parallel()

		_, err := table.ValidateUpdate(int64(3), entity.Record{"id": json.Number("3")})
		require.ErrorIs(t, err, entity.ErrValidation)
	})

	t.Run("insert still rejects the id", func(t *testing.T) {
		t.Parallel()

		_, err := table.ValidateRecord(entity.Record{"id": json.Number("3"), "vendor_name": "Acme"}, schema.ModeInsert)
		require.ErrorIs(t, err, entity.ErrValidation)
	})
}
