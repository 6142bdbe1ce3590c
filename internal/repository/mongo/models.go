package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/prn-tf/printer-portal/internal/domain"
)

// Document types mirror the domain entities with bson tags and native
// ObjectID ids. Conversion happens at the repository boundary so the rest
// of the system only ever sees opaque string ids.

type userDoc struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"hashed_password"`
	CreatedAt    time.Time     `bson:"created_at"`
}

func toUserDoc(u *domain.User) *userDoc {
	return &userDoc{
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}

func fromUserDoc(d *userDoc) *domain.User {
	return &domain.User{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}
}

type printerDoc struct {
	ID                  bson.ObjectID        `bson:"_id,omitempty"`
	OwnerEmail          string               `bson:"owner_email"`
	PrinterName         string               `bson:"printer_name"`
	PrinterMainCategory string               `bson:"printer_main_category"`
	PrinterSubCategory  *string              `bson:"printer_sub_category,omitempty"`
	Brand               string               `bson:"brand"`
	Model               string               `bson:"model"`
	SerialNumber        string               `bson:"serial_number"`
	Vendor              *string              `bson:"vendor,omitempty"`
	InstallDate         *time.Time           `bson:"install_date,omitempty"`
	ColorNos            int                  `bson:"color_nos"`
	Inks                []string             `bson:"inks"`
	Specification       domain.Specification `bson:"specification"`
	Location            string               `bson:"location"`
	Department          *string              `bson:"department,omitempty"`
	InkCosts            map[string]float64   `bson:"ink_costs"`
	InkLink             map[string]*string   `bson:"ink_link"`
	Status              string               `bson:"status"`
	CreatedAt           time.Time            `bson:"created_at"`
	UpdatedAt           time.Time            `bson:"updated_at"`
}

func toPrinterDoc(p *domain.Printer) *printerDoc {
	return &printerDoc{
		OwnerEmail:          p.OwnerEmail,
		PrinterName:         p.PrinterName,
		PrinterMainCategory: p.PrinterMainCategory,
		PrinterSubCategory:  p.PrinterSubCategory,
		Brand:               p.Brand,
		Model:               p.Model,
		SerialNumber:        p.SerialNumber,
		Vendor:              p.Vendor,
		InstallDate:         p.InstallDate,
		ColorNos:            p.ColorNos,
		Inks:                p.Inks,
		Specification:       p.Specification,
		Location:            p.Location,
		Department:          p.Department,
		InkCosts:            p.InkCosts,
		InkLink:             p.InkLink,
		Status:              string(p.Status),
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func fromPrinterDoc(d *printerDoc) *domain.Printer {
	return &domain.Printer{
		ID:                  d.ID.Hex(),
		OwnerEmail:          d.OwnerEmail,
		PrinterName:         d.PrinterName,
		PrinterMainCategory: d.PrinterMainCategory,
		PrinterSubCategory:  d.PrinterSubCategory,
		Brand:               d.Brand,
		Model:               d.Model,
		SerialNumber:        d.SerialNumber,
		Vendor:              d.Vendor,
		InstallDate:         d.InstallDate,
		ColorNos:            d.ColorNos,
		Inks:                d.Inks,
		Specification:       d.Specification,
		Location:            d.Location,
		Department:          d.Department,
		InkCosts:            d.InkCosts,
		InkLink:             d.InkLink,
		Status:              domain.PrinterStatus(d.Status),
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

type inkFillDoc struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	OwnerEmail   string        `bson:"owner_email"`
	PrinterID    string        `bson:"printer_id"`
	Color        string        `bson:"color"`
	AmountLiters float64       `bson:"amount_liters"`
	Timestamp    time.Time     `bson:"timestamp"`
}

func toInkFillDoc(r *domain.InkFillRecord) *inkFillDoc {
	return &inkFillDoc{
		OwnerEmail:   r.OwnerEmail,
		PrinterID:    r.PrinterID,
		Color:        r.Color,
		AmountLiters: r.AmountLiters,
		Timestamp:    r.Timestamp,
	}
}

func fromInkFillDoc(d *inkFillDoc) *domain.InkFillRecord {
	return &domain.InkFillRecord{
		ID:           d.ID.Hex(),
		OwnerEmail:   d.OwnerEmail,
		PrinterID:    d.PrinterID,
		Color:        d.Color,
		AmountLiters: d.AmountLiters,
		Timestamp:    d.Timestamp,
	}
}

// jobDoc stores printer_id as bson.RawValue on read so that records written
// historically with a native ObjectID reference decode as cleanly as records
// written with a plain string. New jobs always persist the hex string form.
type jobDoc struct {
	ID               bson.ObjectID      `bson:"_id,omitempty"`
	PrinterID        bson.RawValue      `bson:"printer_id"`
	OwnerEmail       string             `bson:"owner_email"`
	JobName          string             `bson:"job_name"`
	JobStatus        string             `bson:"job_status"`
	Copies           int                `bson:"copies"`
	PrintDate        time.Time          `bson:"print_date"`
	WidthMM          float64            `bson:"width_mm"`
	LengthMM         float64            `bson:"length_mm"`
	PrintedAreaSqm   float64            `bson:"printed_area_sqm"`
	PrintedLengthM   float64            `bson:"printed_length_m"`
	TotalInkML       float64            `bson:"total_ink_ml"`
	InkConsumptionML map[string]float64 `bson:"ink_consumption_ml"`
	DPIX             int                `bson:"dpi_x"`
	DPIY             int                `bson:"dpi_y"`
	PrintMode        string             `bson:"print_mode"`
	Speed            string             `bson:"speed"`
	PrintedPass      int                `bson:"printed_pass"`
}

func fromJobDoc(d *jobDoc) *domain.PrintJob {
	return &domain.PrintJob{
		ID:               d.ID.Hex(),
		PrinterID:        printerIDString(d.PrinterID),
		OwnerEmail:       d.OwnerEmail,
		JobName:          d.JobName,
		JobStatus:        d.JobStatus,
		Copies:           d.Copies,
		PrintDate:        d.PrintDate,
		WidthMM:          d.WidthMM,
		LengthMM:         d.LengthMM,
		PrintedAreaSqm:   d.PrintedAreaSqm,
		PrintedLengthM:   d.PrintedLengthM,
		TotalInkML:       d.TotalInkML,
		InkConsumptionML: d.InkConsumptionML,
		DPIX:             d.DPIX,
		DPIY:             d.DPIY,
		PrintMode:        d.PrintMode,
		Speed:            d.Speed,
		PrintedPass:      d.PrintedPass,
	}
}

// printerIDString renders a stored printer_id as a hex string whether it was
// persisted as a string or as a native ObjectID.
func printerIDString(v bson.RawValue) string {
	switch v.Type {
	case bson.TypeString:
		s, _ := v.StringValueOK()
		return s
	case bson.TypeObjectID:
		oid, _ := v.ObjectIDOK()
		return oid.Hex()
	default:
		return ""
	}
}

type settingsDoc struct {
	ID              bson.ObjectID `bson:"_id,omitempty"`
	OwnerEmail      string        `bson:"owner_email"`
	CostCoefficient float64       `bson:"cost_coefficient"`
	CurrencySymbol  string        `bson:"currency_symbol"`
}

func fromSettingsDoc(d *settingsDoc) *domain.UserSettings {
	return &domain.UserSettings{
		OwnerEmail:      d.OwnerEmail,
		CostCoefficient: d.CostCoefficient,
		CurrencySymbol:  d.CurrencySymbol,
	}
}

type inventoryDoc struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	OwnerEmail   string        `bson:"owner_email"`
	InkName      string        `bson:"ink_name"`
	UnitVolumeML int           `bson:"unit_volume_ml"`
	StockOnHand  int           `bson:"stock_on_hand"`
}

func toInventoryDoc(i *domain.InventoryItem) *inventoryDoc {
	return &inventoryDoc{
		OwnerEmail:   i.OwnerEmail,
		InkName:      i.InkName,
		UnitVolumeML: i.UnitVolumeML,
		StockOnHand:  i.StockOnHand,
	}
}

func fromInventoryDoc(d *inventoryDoc) *domain.InventoryItem {
	return &domain.InventoryItem{
		ID:           d.ID.Hex(),
		OwnerEmail:   d.OwnerEmail,
		InkName:      d.InkName,
		UnitVolumeML: d.UnitVolumeML,
		StockOnHand:  d.StockOnHand,
	}
}

// jobWriteDoc is the insert-side shape of a print job. New records always
// persist printer_id in the hex string form; the RawValue in jobDoc exists
// only to read historical records that stored a native reference.
type jobWriteDoc struct {
	ID               bson.ObjectID      `bson:"_id,omitempty"`
	PrinterID        string             `bson:"printer_id"`
	OwnerEmail       string             `bson:"owner_email"`
	JobName          string             `bson:"job_name"`
	JobStatus        string             `bson:"job_status"`
	Copies           int                `bson:"copies"`
	PrintDate        time.Time          `bson:"print_date"`
	WidthMM          float64            `bson:"width_mm"`
	LengthMM         float64            `bson:"length_mm"`
	PrintedAreaSqm   float64            `bson:"printed_area_sqm"`
	PrintedLengthM   float64            `bson:"printed_length_m"`
	TotalInkML       float64            `bson:"total_ink_ml"`
	InkConsumptionML map[string]float64 `bson:"ink_consumption_ml"`
	DPIX             int                `bson:"dpi_x"`
	DPIY             int                `bson:"dpi_y"`
	PrintMode        string             `bson:"print_mode"`
	Speed            string             `bson:"speed"`
	PrintedPass      int                `bson:"printed_pass"`
}

func toJobWriteDoc(j *domain.PrintJob) *jobWriteDoc {
	return &jobWriteDoc{
		PrinterID:        j.PrinterID,
		OwnerEmail:       j.OwnerEmail,
		JobName:          j.JobName,
		JobStatus:        j.JobStatus,
		Copies:           j.Copies,
		PrintDate:        j.PrintDate,
		WidthMM:          j.WidthMM,
		LengthMM:         j.LengthMM,
		PrintedAreaSqm:   j.PrintedAreaSqm,
		PrintedLengthM:   j.PrintedLengthM,
		TotalInkML:       j.TotalInkML,
		InkConsumptionML: j.InkConsumptionML,
		DPIX:             j.DPIX,
		DPIY:             j.DPIY,
		PrintMode:        j.PrintMode,
		Speed:            j.Speed,
		PrintedPass:      j.PrintedPass,
	}
}
