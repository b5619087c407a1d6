package service_test

import (
	"context"
	"testing"

	"advocate-backend/models"
	"advocate-backend/service"
	"advocate-backend/service/servicetest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDatasetService() *service.DatasetService {
	store := servicetest.NewCrimeStore(
		&models.Crime{Category: "Property Crimes", Name: "Theft", Section: "Section 378 IPC"},
		&models.Crime{Category: "Cyber Crimes", Name: "Online Fraud", Section: "Section 66D IT Act"},
		&models.Crime{Category: "Property Crimes", Name: "Robbery", Section: "Section 390 IPC"},
		&models.Crime{Category: "Property Crimes", Name: "Criminal Trespass", Section: "Section 441 IPC"},
	)
	return service.NewDatasetService(service.DatasetWithCrimeStore(store))
}

func TestListDataset_SortedGroups(t *testing.T) {
	svc := newDatasetService()

	result, err := svc.ListDataset(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Categories, 2)

	assert.Equal(t, "Cyber Crimes", result.Categories[0].Name)
	assert.Equal(t, "Property Crimes", result.Categories[1].Name)

	var names []string
	for _, c := range result.Categories[1].Crimes {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"Criminal Trespass", "Robbery", "Theft"}, names)
}

func TestListDataset_Empty(t *testing.T) {
	svc := service.NewDatasetService(service.DatasetWithCrimeStore(servicetest.NewCrimeStore()))

	result, err := svc.ListDataset(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, result.Categories)
	assert.Empty(t, result.Categories)
}

func TestCreateCrime_Validation(t *testing.T) {
	svc := newDatasetService()

	_, err := svc.CreateCrime(context.Background(), service.CreateCrimeRequest{
		CrimeInput: service.CrimeInput{Category: "Property Crimes", Name: "  ", Section: "Section 1"},
	})
	assert.ErrorIs(t, err, service.ErrInvalidCrime)

	_, err = svc.CreateCrime(context.Background(), service.CreateCrimeRequest{
		CrimeInput: service.CrimeInput{Category: "Property Crimes", Name: "Theft", Section: "Section 378 IPC"},
	})
	assert.ErrorIs(t, err, service.ErrCrimeExists)
}

func TestCreateCrime_NameTakenInOtherCase(t *testing.T) {
	svc := newDatasetService()
	ctx := context.Background()

	_, err := svc.CreateCrime(ctx, service.CreateCrimeRequest{
		CrimeInput: service.CrimeInput{Category: "Property Crimes", Name: "theft", Section: "Section 379 IPC"},
	})
	assert.ErrorIs(t, err, service.ErrCrimeExists)

	list, err := svc.ListDataset(ctx)
	require.NoError(t, err)
	var thefts int
	for _, category := range list.Categories {
		for _, crime := range category.Crimes {
			if crime.Name == "Theft" || crime.Name == "theft" {
				thefts++
			}
		}
	}
	assert.Equal(t, 1, thefts)
}

func TestCrimeLifecycle(t *testing.T) {
	svc := newDatasetService()
	ctx := context.Background()

	created, err := svc.CreateCrime(ctx, service.CreateCrimeRequest{
		CrimeInput: service.CrimeInput{
			Category:   " Offences Against Body ",
			Name:       "Hurt",
			Section:    "Section 319 IPC",
			Punishment: "Up to 1 year",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Offences Against Body", created.Crime.Category)
	assert.NotEqual(t, uuid.Nil, created.Crime.ID)

	updated, err := svc.UpdateCrime(ctx, service.UpdateCrimeRequest{
		ID: created.Crime.ID,
		CrimeInput: service.CrimeInput{
			Category: "Offences Against Body",
			Name:     "Voluntarily Causing Hurt",
			Section:  "Section 323 IPC",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Voluntarily Causing Hurt", updated.Crime.Name)
	assert.Empty(t, updated.Crime.Punishment)

	require.NoError(t, svc.DeleteCrime(ctx, service.DeleteCrimeRequest{ID: created.Crime.ID}))
	assert.ErrorIs(t, svc.DeleteCrime(ctx, service.DeleteCrimeRequest{ID: created.Crime.ID}), service.ErrCrimeNotFound)

	_, err = svc.UpdateCrime(ctx, service.UpdateCrimeRequest{
		ID:         created.Crime.ID,
		CrimeInput: service.CrimeInput{Category: "c", Name: "n", Section: "s"},
	})
	assert.ErrorIs(t, err, service.ErrCrimeNotFound)
}
