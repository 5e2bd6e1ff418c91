package entity

// Record is a row of a code table keyed by column name.
type Record map[string]any

const (
	InputTypeSelect = "SELECT"
	InputTypeText   = "TEXT"
)

type EditingColumn struct {
	ID            int64   `json:"id"`
	TableName     string  `json:"table_name"`
	ColumnName    string  `json:"column_name"`
	InputType     string  `json:"input_type"`
	CodeID        *string `json:"code_id"`
	CodeName      *string `json:"code_name"`
	CodeTableName *string `json:"codetable_name"`
	AutoTab       int     `json:"auto_tab"`
}

type LookupEntry struct {
	Value any    `json:"value"`
	Label string `json:"label"`
}

type Lookup struct {
	Column  string            `json:"column"`
	Source  string            `json:"source"`
	Labels  map[string]string `json:"labels"`
	Options []LookupEntry     `json:"options"`
}

// LookupSet maps a foreign-key column to its resolved labels.
type LookupSet map[string]Lookup

type Station struct {
	StationID   int64  `json:"station_id"`
	StationName string `json:"station_name"`
	DivisionID  *int64 `json:"division_id"`
	UnitID      *int64 `json:"unit_id"`
}

type DeviceType struct {
	ID              int64  `json:"id"`
	DeviceShortName string `json:"device_short_name"`
	DeviceName      string `json:"device_name"`
}

type Model struct {
	ID        int64  `json:"id"`
	ModelName string `json:"model_name"`
}
