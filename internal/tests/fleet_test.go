package tests

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"carrent/internal/domain"
	"carrent/internal/repository"
	"carrent/internal/service"
)

func TestRegisterVehicle(t *testing.T) {
	t.Parallel()

	vehicleRepo := NewMockVehicleRepository()
	svc := service.NewVehicleService(vehicleRepo, nil)

	vehicle, err := svc.RegisterVehicle(context.Background(), service.RegisterVehicleRequest{
		Plate:     testPlate,
		Make:      "Fiat",
		Model:     "Argo",
		DailyRate: decimal.RequireFromString("89.90"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vehicle.Plate != testPlate {
		t.Errorf("expected plate %s, got %s", testPlate, vehicle.Plate)
	}
	if vehicleRepo.CreateCallCount != 1 {
		t.Errorf("expected 1 create call, got %d", vehicleRepo.CreateCallCount)
	}
}

func TestRegisterVehicle_Validation(t *testing.T) {
	t.Parallel()

	svc := service.NewVehicleService(NewMockVehicleRepository(), nil)

	testCases := []struct {
		name     string
		plate    string
		rate     string
		expected error
	}{
		{"missing plate", "", "89.90", service.ErrMissingPlate},
		{"malformed plate", "1234ABC", "89.90", service.ErrInvalidPlate},
		{"zero rate", testPlate, "0", service.ErrInvalidDailyRate},
		{"negative rate", testPlate, "-10.00", service.ErrInvalidDailyRate},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RegisterVehicle(context.Background(), service.RegisterVehicleRequest{
				Plate:     tc.plate,
				Make:      "Fiat",
				Model:     "Argo",
				DailyRate: decimal.RequireFromString(tc.rate),
			})
			if err != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestRegisterVehicle_DuplicatePlate(t *testing.T) {
	t.Parallel()

	vehicleRepo := NewMockVehicleRepository()
	vehicleRepo.AddVehicle(&domain.Vehicle{Plate: testPlate, DailyRate: decimal.RequireFromString("89.90")})
	svc := service.NewVehicleService(vehicleRepo, nil)

	_, err := svc.RegisterVehicle(context.Background(), service.RegisterVehicleRequest{
		Plate:     testPlate,
		Make:      "Fiat",
		Model:     "Argo",
		DailyRate: decimal.RequireFromString("99.90"),
	})
	if err != service.ErrPlateTaken {
		t.Errorf("expected ErrPlateTaken, got %v", err)
	}
}

func TestUpdateVehicle_ChangesRate(t *testing.T) {
	t.Parallel()

	vehicleRepo := NewMockVehicleRepository()
	vehicleRepo.AddVehicle(&domain.Vehicle{Plate: testPlate, Make: "Fiat", Model: "Argo", DailyRate: decimal.RequireFromString("89.90")})
	svc := service.NewVehicleService(vehicleRepo, nil)

	vehicle, err := svc.UpdateVehicle(context.Background(), service.UpdateVehicleRequest{
		Plate:     testPlate,
		Make:      "Fiat",
		Model:     "Argo",
		DailyRate: decimal.RequireFromString("119.90"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := vehicle.DailyRate.StringFixed(2); got != "119.90" {
		t.Errorf("expected 119.90, got %s", got)
	}
}

func TestDeleteVehicle(t *testing.T) {
	t.Parallel()

	vehicleRepo := NewMockVehicleRepository()
	vehicleRepo.AddVehicle(&domain.Vehicle{Plate: testPlate, DailyRate: decimal.RequireFromString("89.90")})
	svc := service.NewVehicleService(vehicleRepo, nil)

	if err := svc.DeleteVehicle(context.Background(), testPlate); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.GetVehicle(context.Background(), testPlate); err != repository.ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestRegisterCustomer_NormalizesCPF(t *testing.T) {
	t.Parallel()

	customerRepo := NewMockCustomerRepository()
	svc := service.NewCustomerService(customerRepo)

	customer, err := svc.RegisterCustomer(context.Background(), service.RegisterCustomerRequest{
		CPF:      "529.982.247-25",
		FullName: "  Maria Silva  ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if customer.CPF != testCPF {
		t.Errorf("expected stored CPF %s, got %s", testCPF, customer.CPF)
	}
	if customer.FullName != "Maria Silva" {
		t.Errorf("expected trimmed name, got %q", customer.FullName)
	}
}

func TestRegisterCustomer_Validation(t *testing.T) {
	t.Parallel()

	svc := service.NewCustomerService(NewMockCustomerRepository())

	testCases := []struct {
		name     string
		cpf      string
		fullName string
		expected error
	}{
		{"missing cpf", "", "Maria Silva", service.ErrMissingCPF},
		{"invalid cpf", "52998224724", "Maria Silva", service.ErrInvalidCPF},
		{"blank name", testCPF, "   ", service.ErrMissingName},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RegisterCustomer(context.Background(), service.RegisterCustomerRequest{
				CPF:      tc.cpf,
				FullName: tc.fullName,
			})
			if err != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestRegisterCustomer_FormattedAndBareCPFAreSameIdentity(t *testing.T) {
	t.Parallel()

	customerRepo := NewMockCustomerRepository()
	svc := service.NewCustomerService(customerRepo)

	_, err := svc.RegisterCustomer(context.Background(), service.RegisterCustomerRequest{
		CPF:      testCPF,
		FullName: "Maria Silva",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.RegisterCustomer(context.Background(), service.RegisterCustomerRequest{
		CPF:      "529.982.247-25",
		FullName: "Maria Silva",
	})
	if err != service.ErrCPFTaken {
		t.Errorf("expected ErrCPFTaken, got %v", err)
	}
}

func TestGetCustomer_AcceptsFormattedCPF(t *testing.T) {
	t.Parallel()

	customerRepo := NewMockCustomerRepository()
	customerRepo.AddCustomer(&domain.Customer{CPF: testCPF, FullName: "Maria Silva"})
	svc := service.NewCustomerService(customerRepo)

	customer, err := svc.GetCustomer(context.Background(), "529.982.247-25")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if customer.FullName != "Maria Silva" {
		t.Errorf("expected Maria Silva, got %q", customer.FullName)
	}
}
