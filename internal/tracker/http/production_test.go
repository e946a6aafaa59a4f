package http_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/balco/tracker/pkg/trackersdk"
	"github.com/stretchr/testify/require"
)

type catalogIDs struct {
	kasa, kapak, beyaz string
}

func (s *server) seedCatalog(t *testing.T, admin string) catalogIDs {
	t.Helper()
	var ids catalogIDs

	for name, dst := range map[string]*string{"Plastik Kasa": &ids.kasa, "Kapak": &ids.kapak} {
		rec := s.do(t, request{
			method: http.MethodPost,
			path:   "/v1/product-types",
			body:   trackersdk.CreateProductTypeRequest{Name: name},
			token:  admin,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		*dst = decode[trackersdk.ProductTypeResponse](t, rec).ProductType.ID
	}

	rec := s.do(t, request{
		method: http.MethodPost,
		path:   "/v1/colors",
		body:   trackersdk.CreateColorRequest{Name: "Beyaz", HexCode: "#FFFFFF"},
		token:  admin,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	ids.beyaz = decode[trackersdk.ColorResponse](t, rec).Color.ID

	return ids
}

func (s *server) createRecord(t *testing.T, token string, req trackersdk.CreateRecordRequest) trackersdk.ProductionRecord {
	t.Helper()
	rec := s.do(t, request{method: http.MethodPost, path: "/v1/production", body: req, token: token})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decode[trackersdk.RecordResponse](t, rec)
	require.Equal(t, "production record created", body.Message)
	return body.Record
}

func today() string { return time.Now().UTC().Format("2006-01-02") }

func TestProduction_Create(t *testing.T) {
	s := newServer(t, newSQLiteStore(t))
	ids := s.seedCatalog(t, s.adminToken(t))

	operatorToken := s.userToken(t)
	operator := s.do(t, request{method: http.MethodGet, path: "/v1/session", token: operatorToken})
	operatorID := decode[trackersdk.SessionResponse](t, operator).User.ID

	got := s.createRecord(t, operatorToken, trackersdk.CreateRecordRequest{
		ProductTypeID: ids.kasa,
		ColorID:       ids.beyaz,
		Quantity:      120,
		Date:          today(),
		Shift:         "morning",
		Operator:      "Ali",
		Notes:         "kalıp değişimi",
	})

	require.NotEmpty(t, got.ID)
	require.Equal(t, "Plastik Kasa", got.ProductTypeName)
	require.Equal(t, "Beyaz", got.ColorName)
	require.Equal(t, "#FFFFFF", got.ColorHex)
	require.Equal(t, 120, got.Quantity)
	require.Equal(t, today(), got.Date)
	require.Equal(t, "A", got.Quality, "quality defaults to A")
	require.Equal(t, operatorID, got.CreatedBy)
}

func TestProduction_CreateRejects(t *testing.T) {
	s := newServer(t, newSQLiteStore(t))
	admin := s.adminToken(t)
	ids := s.seedCatalog(t, admin)

	valid := trackersdk.CreateRecordRequest{
		ProductTypeID: ids.kasa,
		ColorID:       ids.beyaz,
		Quantity:      10,
		Date:          today(),
		Shift:         "night",
		Operator:      "Ali",
	}

	tests := []struct {
		name   string
		mutate func(*trackersdk.CreateRecordRequest)
		field  string
		msg    string
	}{
		{"zero quantity", func(r *trackersdk.CreateRecordRequest) { r.Quantity = 0 }, "quantity", ""},
		{"bad date", func(r *trackersdk.CreateRecordRequest) { r.Date = "20/05/2026" }, "date", ""},
		{"unknown shift", func(r *trackersdk.CreateRecordRequest) { r.Shift = "evening" }, "shift", ""},
		{"unknown quality", func(r *trackersdk.CreateRecordRequest) { r.Quality = "D" }, "quality", ""},
		{"missing operator", func(r *trackersdk.CreateRecordRequest) { r.Operator = "" }, "operator", ""},
		{"unknown product type", func(r *trackersdk.CreateRecordRequest) { r.ProductTypeID = "01J0000000000000000000000" }, "", "unknown product type"},
		{"unknown color", func(r *trackersdk.CreateRecordRequest) { r.ColorID = "01J0000000000000000000000" }, "", "unknown color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			rec := s.do(t, request{method: http.MethodPost, path: "/v1/production", body: req, token: admin})
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			body := decode[trackersdk.ErrorResponse](t, rec)
			if tt.field != "" {
				require.Contains(t, body.Fields, tt.field)
			} else {
				require.Contains(t, body.Error, tt.msg)
			}
		})
	}
}

func TestProduction_List(t *testing.T) {
	s := newServer(t, newSQLiteStore(t))
	admin := s.adminToken(t)
	ids := s.seedCatalog(t, admin)

	for i := range 12 {
		s.createRecord(t, admin, trackersdk.CreateRecordRequest{
			ProductTypeID: ids.kapak,
			ColorID:       ids.beyaz,
			Quantity:      i + 1,
			Date:          today(),
			Shift:         "afternoon",
			Operator:      "Veli",
		})
	}

	tests := []struct {
		query   string
		page    int
		pages   int
		records int
		first   int
	}{
		{"", 1, 2, 10, 12},
		{"?page=2", 2, 2, 2, 2},
		{"?page=1&limit=5", 1, 3, 5, 12},
		{"?page=3&limit=5", 3, 3, 2, 2},
		{"?page=0&limit=500", 1, 1, 12, 12},
		{"?page=9", 9, 2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("query %q", tt.query), func(t *testing.T) {
			rec := s.do(t, request{method: http.MethodGet, path: "/v1/production" + tt.query, token: admin})
			require.Equal(t, http.StatusOK, rec.Code)

			body := decode[trackersdk.RecordsResponse](t, rec)
			require.Equal(t, 12, body.Total)
			require.Equal(t, tt.page, body.Page)
			require.Equal(t, tt.pages, body.Pages)
			require.Len(t, body.Records, tt.records)
			require.NotNil(t, body.Records, "an empty page is an empty list")
			if tt.records > 0 {
				require.Equal(t, tt.first, body.Records[0].Quantity, "newest first")
				require.Equal(t, "Kapak", body.Records[0].ProductTypeName)
			}
		})
	}
}

func TestProduction_Summary(t *testing.T) {
	s := newServer(t, newSQLiteStore(t))
	admin := s.adminToken(t)

	t.Run("empty", func(t *testing.T) {
		rec := s.do(t, request{method: http.MethodGet, path: "/v1/production/summary", token: admin})
		require.Equal(t, http.StatusOK, rec.Code)

		body := decode[trackersdk.SummaryResponse](t, rec)
		require.Zero(t, body.TodayTotal)
		require.Zero(t, body.RecordCount)
		require.Empty(t, body.ByProductType)
		require.Equal(t, map[string]int{"morning": 0, "afternoon": 0, "night": 0}, body.ByShift)
		require.Equal(t, map[string]int{"A": 0, "B": 0, "C": 0}, body.ByQuality)
	})

	ids := s.seedCatalog(t, admin)
	old := time.Now().UTC().AddDate(0, 0, -30).Format("2006-01-02")
	for _, r := range []trackersdk.CreateRecordRequest{
		{ProductTypeID: ids.kasa, Quantity: 100, Date: today(), Shift: "morning", Quality: "A"},
		{ProductTypeID: ids.kasa, Quantity: 50, Date: today(), Shift: "night", Quality: "B"},
		{ProductTypeID: ids.kapak, Quantity: 30, Date: old, Shift: "morning", Quality: "C"},
	} {
		r.ColorID = ids.beyaz
		r.Operator = "Ali"
		s.createRecord(t, admin, r)
	}

	t.Run("aggregates", func(t *testing.T) {
		rec := s.do(t, request{method: http.MethodGet, path: "/v1/production/summary", token: admin})
		require.Equal(t, http.StatusOK, rec.Code)

		body := decode[trackersdk.SummaryResponse](t, rec)
		require.Equal(t, 150, body.TodayTotal)
		require.Equal(t, 150, body.WeeklyTotal)
		require.Equal(t, 3, body.RecordCount)
		require.Equal(t, 2, body.ProductTypeCount)
		require.ElementsMatch(t, []trackersdk.NamedQuantity{
			{Name: "Plastik Kasa", Quantity: 150},
			{Name: "Kapak", Quantity: 30},
		}, body.ByProductType)
		require.Equal(t, map[string]int{"morning": 130, "afternoon": 0, "night": 50}, body.ByShift)
		require.Equal(t, map[string]int{"A": 100, "B": 50, "C": 30}, body.ByQuality)
	})
}

func TestProduction_RequiresSession(t *testing.T) {
	s := newServer(t, newSQLiteStore(t))

	for _, path := range []string{"/v1/production", "/v1/production/summary"} {
		rec := s.do(t, request{method: http.MethodGet, path: path})
		require.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
	rec := s.do(t, request{method: http.MethodPost, path: "/v1/production", body: trackersdk.CreateRecordRequest{}})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProduction_DuringOutage(t *testing.T) {
	s := newOfflineServer(t)
	admin := s.login(t, "admin@balco.com", "admin123").Token

	for _, path := range []string{"/v1/production", "/v1/production/summary"} {
		rec := s.do(t, request{method: http.MethodGet, path: path, token: admin})
		require.Equal(t, http.StatusServiceUnavailable, rec.Code, path)
		require.Equal(t, "database unavailable, try again later", decode[trackersdk.ErrorResponse](t, rec).Error)
	}

	rec := s.do(t, request{method: http.MethodPost, path: "/v1/production", token: admin, body: trackersdk.CreateRecordRequest{
		ProductTypeID: "01J0000000000000000000000",
		ColorID:       "01J0000000000000000000000",
		Quantity:      5,
		Date:          today(),
		Shift:         "morning",
		Operator:      "Ali",
	}})
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
