package domain

import "time"

// Plant is one solar generation site ("usina"). JSON field names keep the
// original dashboard wire contract.
type Plant struct {
	ID            int64     `db:"id" json:"id"`
	Nome          string    `db:"nome" json:"nome"`
	Distribuidora *string   `db:"distribuidora" json:"distribuidora"`
	Consorcio     *string   `db:"consorcio" json:"consorcio"`
	Potencia      *float64  `db:"potencia" json:"potencia"`
	Latitude      *float64  `db:"latitude" json:"latitude"`
	Longitude     *float64  `db:"longitude" json:"longitude"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`

	Geracoes []*Reading `db:"-" json:"geracoes,omitempty"`
}

// Reading is one day's recorded energy output for a plant. At most one
// reading exists per (plant, date).
type Reading struct {
	ID         int64     `db:"id" json:"id"`
	UsinaID    int64     `db:"usina_id" json:"usinaId"`
	Data       time.Time `db:"data" json:"data"`
	EnergiaKwh float64   `db:"energia_kwh" json:"energiaKwh"`
	Ocorrencia *string   `db:"ocorrencia" json:"ocorrencia"`
	Clima      *string   `db:"clima" json:"clima"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`

	Usina *Plant `db:"-" json:"usina,omitempty"`
}
