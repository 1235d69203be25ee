package httpapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"serverbook/internal/domain"
)

// Request bodies use pointer fields so PATCH can distinguish "absent" from
// "set to zero value". The same DTOs serve create and update; the
// registries enforce which fields are required.

type providerDTO struct {
	Name       *string `json:"name"`
	ConsoleURL *string `json:"consoleUrl"`
	Notes      *string `json:"notes"`
}

func (d providerDTO) fields() domain.ProviderFields {
	return domain.ProviderFields{Name: d.Name, ConsoleURL: d.ConsoleURL, Notes: d.Notes}
}

type personDTO struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Telegram *string `json:"telegram"`
}

func (d personDTO) fields() domain.PersonFields {
	return domain.PersonFields{Name: d.Name, Email: d.Email, Telegram: d.Telegram}
}

type serverDTO struct {
	Name      *string `json:"name"`
	Hostname  *string `json:"hostname"`
	IPPublic  *string `json:"ipPublic"`
	IPPrivate *string `json:"ipPrivate"`
	Port      *int    `json:"port"`

	Username *string `json:"username"`
	Password *string `json:"password"`
	SSHKey   *string `json:"sshKey"`

	Status      *string `json:"status"`
	Purpose     *string `json:"purpose"`
	BillingType *string `json:"billingType"`

	CostMonthEstimated *float64 `json:"costMonthEstimated"`
	DecommissionAt     *string  `json:"decommissionAt"`

	ProviderID *int64 `json:"providerId"`
	OwnerID    *int64 `json:"ownerId"`

	OS          *string `json:"os"`
	CPU         *string `json:"cpu"`
	RAM         *string `json:"ram"`
	Storage     *string `json:"storage"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	Tags        *string `json:"tags"`
	Account     *string `json:"account"`
}

// fields validates enum values while mapping; unknown values fail with
// domain.ErrValidation before any registry call.
func (d serverDTO) fields() (domain.ServerFields, error) {
	f := domain.ServerFields{
		Name:               d.Name,
		Hostname:           d.Hostname,
		IPPublic:           d.IPPublic,
		IPPrivate:          d.IPPrivate,
		Port:               d.Port,
		Username:           d.Username,
		Password:           d.Password,
		SSHKey:             d.SSHKey,
		CostMonthEstimated: d.CostMonthEstimated,
		DecommissionAt:     d.DecommissionAt,
		ProviderID:         d.ProviderID,
		OwnerID:            d.OwnerID,
		OS:                 d.OS,
		CPU:                d.CPU,
		RAM:                d.RAM,
		Storage:            d.Storage,
		Location:           d.Location,
		Description:        d.Description,
		Tags:               d.Tags,
		Account:            d.Account,
	}

	if d.Status != nil {
		status, err := domain.ParseStatus(*d.Status)
		if err != nil {
			return f, err
		}
		f.Status = &status
	}
	if d.Purpose != nil {
		purpose, err := domain.ParsePurpose(*d.Purpose)
		if err != nil {
			return f, err
		}
		f.Purpose = &purpose
	}
	if d.BillingType != nil {
		billing, err := domain.ParseBillingType(*d.BillingType)
		if err != nil {
			return f, err
		}
		f.BillingType = &billing
	}
	return f, nil
}

type snapshotDTO struct {
	ServerID  *int64   `json:"serverId"`
	Month     *string  `json:"month"`
	CostMonth *float64 `json:"costMonth"`
	Source    *string  `json:"source"`
}

func (d snapshotDTO) fields() domain.SnapshotFields {
	return domain.SnapshotFields{ServerID: d.ServerID, Month: d.Month, CostMonth: d.CostMonth, Source: d.Source}
}

// bind decodes a JSON body into dst, turning malformed input into a 400.
func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}
	return nil
}
