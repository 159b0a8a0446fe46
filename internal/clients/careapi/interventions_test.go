package careapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxylife/oxycare/internal/interfaces"
	"github.com/oxylife/oxycare/internal/models"
)

func TestInterventionList_FilterParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/interventions", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "25", q.Get("per_page"))
		assert.Equal(t, "7", q.Get("technicien_id"))
		assert.Equal(t, models.StatusPlanned, q.Get("statut"))
		assert.Equal(t, "oxygene", q.Get("recherche"))
		io.WriteString(w, `{"success":true,"data":{"items":[{"id":1}],"total_elements":1}}`)
	}))
	defer srv.Close()

	client := NewClient(newTestStore(t, "validA", "validR"), WithBaseURL(srv.URL))

	filter := interfaces.InterventionFilter{
		Page:         2,
		PerPage:      25,
		TechnicianID: 7,
		Status:       models.StatusPlanned,
		Search:       "oxygene",
	}
	page, err := client.Interventions().List(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Count())

	success, _ := client.Notifier().Messages()
	assert.Equal(t, "1 interventions trouvées", success)
}

func TestInterventionCreate_DefaultsStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var sent models.Intervention
		require.NoError(t, json.Unmarshal(body, &sent))
		assert.Equal(t, models.StatusPlanned, sent.Status)
		io.WriteString(w, `{"success":true,"data":{"id":9,"statut":"planifiee"}}`)
	}))
	defer srv.Close()

	client := NewClient(newTestStore(t, "validA", "validR"), WithBaseURL(srv.URL))

	created, err := client.Interventions().Create(context.Background(), &models.Intervention{
		PatientID:    1,
		DeviceID:     2,
		TechnicianID: 3,
		Treatment:    models.TreatmentOxygen,
		Type:         "Installation",
	})
	require.NoError(t, err)
	assert.Equal(t, 9, created.ID)
}

func TestInterventionUpdateStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/interventions/42/statut", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		var change models.StatusChange
		require.NoError(t, json.Unmarshal(body, &change))
		assert.Equal(t, models.StatusPostponed, change.Status)
		assert.Equal(t, "2026-09-05", change.RescheduleDate)

		io.WriteString(w, `{"id":42,"statut":"reportee","date_reprogrammation":"2026-09-05"}`)
	}))
	defer srv.Close()

	client := NewClient(newTestStore(t, "validA", "validR"), WithBaseURL(srv.URL))

	updated, err := client.Interventions().UpdateStatus(context.Background(), 42, models.StatusChange{
		Status:         models.StatusPostponed,
		RescheduleDate: "2026-09-05",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPostponed, updated.Status)

	success, _ := client.Notifier().Messages()
	assert.Equal(t, "Statut mis à jour", success)
}

func TestInterventionUpdateStatus_ErrorSetsNotifier(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"erreur":"Statut invalide"}`)
	}))
	defer srv.Close()

	client := NewClient(newTestStore(t, "validA", "validR"), WithBaseURL(srv.URL))

	_, err := client.Interventions().UpdateStatus(context.Background(), 42, models.StatusChange{Status: "bogus"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)

	_, errMsg := client.Notifier().Messages()
	assert.Equal(t, "Statut invalide", errMsg)
}
