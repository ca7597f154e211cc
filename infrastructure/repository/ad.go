package repository

import (
	"database/sql"

	"github.com/vfg2006/ads-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-analytics-api/internal/domain"
)

var adMapper = tableMapper[domain.Ad]{
	table: string(domain.TableAds),
	columns: []string{
		"id", "account_id", "campaign_id", "adset_id", "name",
		"status", "created_time", "updated_time", "data",
	},
	orderBy: "created_time DESC",
	values: func(a domain.Ad) []any {
		return []any{
			a.ID,
			a.AccountID,
			nullString(a.CampaignID),
			nullString(a.AdSetID),
			a.Name,
			nullString(a.Status),
			nullTime(a.CreatedTime),
			nullTime(a.UpdatedTime),
			jsonValue(a.Data),
		}
	},
	scan: scanAd,
}

func NewAdRepository(conn *postgres.Connection) TableRepository[domain.Ad] {
	return newTableRepository(conn, adMapper)
}

func scanAd(row scanner) (domain.Ad, error) {
	var (
		ad                          domain.Ad
		campaignID, adSetID, status sql.NullString
		created, updated            sql.NullTime
		data                        []byte
	)

	err := row.Scan(
		&ad.ID,
		&ad.AccountID,
		&campaignID,
		&adSetID,
		&ad.Name,
		&status,
		&created,
		&updated,
		&data,
	)
	if err != nil {
		return ad, err
	}

	ad.CampaignID = campaignID.String
	ad.AdSetID = adSetID.String
	ad.Status = status.String
	ad.CreatedTime = timePtr(created)
	ad.UpdatedTime = timePtr(updated)
	ad.Data = rawJSON(data)

	return ad, nil
}
