package orderservice

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/GlebRadaev/fieldbook/internal/directory"
	"github.com/GlebRadaev/fieldbook/internal/domain"
	"github.com/GlebRadaev/fieldbook/internal/gateway"
	"github.com/GlebRadaev/fieldbook/internal/timegrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

var (
	venue = time.FixedZone("ICT", 7*60*60)
	now   = time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)
)

type mocks struct {
	repo      *MockRepo
	fields    *MockFieldRepo
	gateway   *MockGateway
	directory *MockDirectory
	resolver  *MockPriceResolver
}

func NewMock(t *testing.T, opts Options) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		repo:      NewMockRepo(ctrl),
		fields:    NewMockFieldRepo(ctrl),
		gateway:   NewMockGateway(ctrl),
		directory: NewMockDirectory(ctrl),
		resolver:  NewMockPriceResolver(ctrl),
	}
	if opts.Location == nil {
		opts.Location = venue
	}
	service := New(m.repo, m.fields, m.gateway, m.directory, m.resolver, opts)
	service.now = func() time.Time { return now }
	return service, m
}

func clock(h, m int) timegrid.Clock {
	return timegrid.Clock{Hour: h, Minute: m}
}

func validRequest() ReservationRequest {
	return ReservationRequest{
		UserID:      "u1",
		StoreID:     "s1",
		Amount:      300,
		Description: "Evening game",
		Date:        time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC),
		Items: []Item{
			{FieldID: 1, Name: "Pitch A", Start: clock(8, 30), End: clock(9, 0), Price: 100},
			{FieldID: 1, Name: "Pitch A", Start: clock(8, 0), End: clock(8, 30), Price: 100},
			{FieldID: 2, Name: "Pitch B", Start: clock(8, 0), End: clock(8, 30), Price: 100},
		},
	}
}

func TestService_CreateReservation(t *testing.T) {
	service, m := NewMock(t, Options{ReturnURL: "http://app/ok", CancelURL: "http://app/cancel"})
	req := validRequest()

	m.fields.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Field{ID: 1}, nil)
	m.fields.EXPECT().FindByID(gomock.Any(), 2).Return(&domain.Field{ID: 2}, nil)
	m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order *domain.Order, details []domain.OrderDetail) error {
			assert.Equal(t, domain.OrderPending, order.Status)
			assert.Equal(t, now.UnixMilli(), order.OrderRef)
			assert.Equal(t, int64(300), order.Cost)
			require.Len(t, details, 3)
			assert.True(t, details[0].StartTime.Equal(time.Date(2024, 5, 13, 8, 30, 0, 0, venue)))
			assert.True(t, details[1].EndTime.Equal(time.Date(2024, 5, 13, 8, 30, 0, 0, venue)))
			order.ID = 42
			return nil
		})
	m.gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, checkout gateway.CheckoutRequest) (*gateway.Checkout, error) {
			assert.Equal(t, now.UnixMilli(), checkout.OrderCode)
			assert.Equal(t, "http://app/ok", checkout.ReturnURL)
			assert.Equal(t, []gateway.Item{
				{Name: "Pitch A 08:00-09:00", Quantity: 1, Price: 200},
				{Name: "Pitch B 08:00-08:30", Quantity: 1, Price: 100},
			}, checkout.Items)
			return &gateway.Checkout{CheckoutURL: "https://pay/1", OrderCode: checkout.OrderCode}, nil
		})

	res, err := service.CreateReservation(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "https://pay/1", res.CheckoutURL)
	assert.Equal(t, now.UnixMilli(), res.OrderRef)
	assert.Equal(t, 42, res.Order.ID)
}

func TestService_CreateReservationErrors(t *testing.T) {
	tests := []struct {
		name        string
		opts        Options
		mutate      func(req *ReservationRequest)
		prepareMock func(m mocks)
		expectErr   error
	}{
		{
			name:        "Missing amount",
			mutate:      func(req *ReservationRequest) { req.Amount = 0 },
			prepareMock: func(m mocks) {},
			expectErr:   ErrValidation,
		},
		{
			name:        "Missing items",
			mutate:      func(req *ReservationRequest) { req.Items = nil },
			prepareMock: func(m mocks) {},
			expectErr:   ErrValidation,
		},
		{
			name:        "Missing user and date",
			mutate:      func(req *ReservationRequest) { req.UserID = ""; req.Date = time.Time{} },
			prepareMock: func(m mocks) {},
			expectErr:   ErrValidation,
		},
		{
			name:        "Empty item range",
			mutate:      func(req *ReservationRequest) { req.Items[0].End = req.Items[0].Start },
			prepareMock: func(m mocks) {},
			expectErr:   ErrValidation,
		},
		{
			name:   "Unknown field",
			mutate: func(req *ReservationRequest) {},
			prepareMock: func(m mocks) {
				m.fields.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)
			},
			expectErr: ErrFieldNotFound,
		},
		{
			name:   "Gateway fails after the order is stored",
			mutate: func(req *ReservationRequest) {},
			prepareMock: func(m mocks) {
				m.fields.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(&domain.Field{ID: 1}, nil).Times(2)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(nil, gateway.ErrUnexpectedResponse)
			},
			expectErr: ErrGateway,
		},
		{
			name:   "Price differs from the resolved timeline",
			opts:   Options{VerifyPrices: true},
			mutate: func(req *ReservationRequest) {},
			prepareMock: func(m mocks) {
				m.fields.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(&domain.Field{ID: 1}, nil).Times(2)
				m.resolver.EXPECT().Resolve(gomock.Any(), 1, gomock.Any()).
					Return([]timegrid.PricedSlot{{Start: clock(8, 0), End: clock(10, 0), Price: 150}}, nil)
			},
			expectErr: ErrValidation,
		},
		{
			name:   "No price configured for the item",
			opts:   Options{VerifyPrices: true},
			mutate: func(req *ReservationRequest) { req.Items = req.Items[:1] },
			prepareMock: func(m mocks) {
				m.fields.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Field{ID: 1}, nil)
				m.resolver.EXPECT().Resolve(gomock.Any(), 1, gomock.Any()).Return(nil, nil)
			},
			expectErr: ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t, tt.opts)
			tt.prepareMock(m)
			req := validRequest()
			tt.mutate(&req)

			res, err := service.CreateReservation(context.Background(), req)

			assert.ErrorIs(t, err, tt.expectErr)
			assert.Nil(t, res)
		})
	}
}

func TestService_CreateReservationVerifiedPrices(t *testing.T) {
	service, m := NewMock(t, Options{VerifyPrices: true})
	req := validRequest()
	timeline := []timegrid.PricedSlot{{Start: clock(8, 0), End: clock(10, 0), Price: 100}}

	m.fields.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(&domain.Field{ID: 1}, nil).Times(2)
	m.resolver.EXPECT().Resolve(gomock.Any(), 1, req.Date).Return(timeline, nil)
	m.resolver.EXPECT().Resolve(gomock.Any(), 2, req.Date).Return(timeline, nil)
	m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	m.gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(&gateway.Checkout{CheckoutURL: "https://pay/1"}, nil)

	_, err := service.CreateReservation(context.Background(), req)

	assert.NoError(t, err)
}

func TestService_CreateReservationOnDaylightSavingDay(t *testing.T) {
	service, m := NewMock(t, Options{})
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	req := ReservationRequest{
		UserID:  "u1",
		StoreID: "s1",
		Amount:  150,
		Date:    time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		Items:   []Item{{FieldID: 1, Name: "Pitch A", Start: clock(8, 0), End: clock(8, 30), Price: 150}},
	}

	m.fields.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.Field{ID: 1, TimeZone: "Europe/Berlin"}, nil)
	m.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *domain.Order, details []domain.OrderDetail) error {
			require.Len(t, details, 1)
			assert.True(t, details[0].StartTime.Equal(time.Date(2024, 3, 31, 8, 0, 0, 0, berlin)))
			assert.True(t, details[0].EndTime.Equal(time.Date(2024, 3, 31, 8, 30, 0, 0, berlin)))
			return nil
		})
	m.gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(&gateway.Checkout{CheckoutURL: "https://pay/1"}, nil)

	_, err = service.CreateReservation(context.Background(), req)

	assert.NoError(t, err)
}

func TestService_NextRefIsStrictlyIncreasing(t *testing.T) {
	service, _ := NewMock(t, Options{})

	first := service.nextRef(now)
	second := service.nextRef(now)
	third := service.nextRef(now.Add(-time.Second))

	assert.Equal(t, now.UnixMilli(), first)
	assert.Equal(t, first+1, second)
	assert.Equal(t, second+1, third)
}

func TestMergeLineItemsForCheckout(t *testing.T) {
	items := []Item{
		{FieldID: 1, Start: clock(9, 0), End: clock(9, 30), Price: 100},
		{FieldID: 1, Start: clock(8, 0), End: clock(8, 30), Price: 150},
		{FieldID: 1, Start: clock(8, 30), End: clock(9, 0), Price: 100},
		{FieldID: 1, Start: clock(10, 0), End: clock(10, 30), Price: 100},
	}

	got := MergeLineItemsForCheckout(items)

	assert.Equal(t, []Item{
		{FieldID: 1, Start: clock(8, 0), End: clock(9, 30), Price: 350},
		{FieldID: 1, Start: clock(10, 0), End: clock(10, 30), Price: 100},
	}, got)
	assert.Equal(t, clock(9, 0), items[0].Start)
}

func TestService_HandleSettlement(t *testing.T) {
	pending := func() *domain.Order { return &domain.Order{ID: 5, OrderRef: 77, Status: domain.OrderPending} }
	pendingOnly := []domain.OrderStatus{domain.OrderPending}

	tests := []struct {
		name        string
		code        string
		prepareMock func(m mocks)
		wantStatus  domain.OrderStatus
		expectErr   error
	}{
		{
			name: "Success code pays the order",
			code: "00",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByRef(gomock.Any(), int64(77)).Return(pending(), nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), 5, pendingOnly, domain.OrderPaid).Return(true, nil)
			},
			wantStatus: domain.OrderPaid,
		},
		{
			name: "Any other code fails the order",
			code: "01",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByRef(gomock.Any(), int64(77)).Return(pending(), nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), 5, pendingOnly, domain.OrderFailed).Return(true, nil)
			},
			wantStatus: domain.OrderFailed,
		},
		{
			name: "Unknown order",
			code: "00",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByRef(gomock.Any(), int64(77)).Return(nil, nil)
			},
			expectErr: ErrOrderNotFound,
		},
		{
			name: "Paid order is not flipped by a later failure",
			code: "01",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByRef(gomock.Any(), int64(77)).Return(&domain.Order{ID: 5, OrderRef: 77, Status: domain.OrderPaid}, nil)
			},
			expectErr: ErrOrderFinalized,
		},
		{
			name: "Sweep wins the race",
			code: "00",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByRef(gomock.Any(), int64(77)).Return(pending(), nil)
				m.repo.EXPECT().UpdateStatus(gomock.Any(), 5, pendingOnly, domain.OrderPaid).Return(false, nil)
			},
			expectErr: ErrOrderFinalized,
		},
		{
			name: "Storage error",
			code: "00",
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindByRef(gomock.Any(), int64(77)).Return(nil, errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t, Options{})
			tt.prepareMock(m)

			order, err := service.HandleSettlement(context.Background(), 77, tt.code)
			if tt.expectErr != nil {
				if errors.Is(err, ErrOrderFinalized) || errors.Is(err, ErrOrderNotFound) {
					assert.ErrorIs(t, err, tt.expectErr)
				} else {
					assert.EqualError(t, err, tt.expectErr.Error())
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, order.Status)
		})
	}
}

func TestService_ForceStatus(t *testing.T) {
	tests := []struct {
		name        string
		current     domain.OrderStatus
		target      domain.OrderStatus
		prepareMock func(m mocks)
		expectErr   error
	}{
		{
			name:    "Failed order can be paid",
			current: domain.OrderFailed,
			target:  domain.OrderPaid,
			prepareMock: func(m mocks) {
				m.repo.EXPECT().UpdateStatus(gomock.Any(), 5, []domain.OrderStatus{domain.OrderPending, domain.OrderFailed}, domain.OrderPaid).Return(true, nil)
				m.repo.EXPECT().FindDetails(gomock.Any(), []int{5}).Return(nil, nil)
				m.directory.EXPECT().Store(gomock.Any(), "s1").Return(nil)
				m.directory.EXPECT().User(gomock.Any(), "u1").Return(nil)
			},
		},
		{
			name:    "Same status is a no-op",
			current: domain.OrderPaid,
			target:  domain.OrderPaid,
			prepareMock: func(m mocks) {
				m.repo.EXPECT().FindDetails(gomock.Any(), []int{5}).Return(nil, nil)
				m.directory.EXPECT().Store(gomock.Any(), "s1").Return(nil)
				m.directory.EXPECT().User(gomock.Any(), "u1").Return(nil)
			},
		},
		{
			name:        "Paid order cannot fail",
			current:     domain.OrderPaid,
			target:      domain.OrderFailed,
			prepareMock: func(m mocks) {},
			expectErr:   ErrTransitionNotAllowed,
		},
		{
			name:        "Nothing returns to pending",
			current:     domain.OrderFailed,
			target:      domain.OrderPending,
			prepareMock: func(m mocks) {},
			expectErr:   ErrTransitionNotAllowed,
		},
		{
			name:    "Concurrent change",
			current: domain.OrderPending,
			target:  domain.OrderFailed,
			prepareMock: func(m mocks) {
				m.repo.EXPECT().UpdateStatus(gomock.Any(), 5, []domain.OrderStatus{domain.OrderPending}, domain.OrderFailed).Return(false, nil)
			},
			expectErr: ErrTransitionNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t, Options{})
			m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.Order{ID: 5, UserID: "u1", StoreID: "s1", Status: tt.current}, nil)
			tt.prepareMock(m)

			view, err := service.ForceStatus(context.Background(), 5, tt.target)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.target, view.Status)
		})
	}
}

func TestService_ForceStatusRejectsUnknownStatus(t *testing.T) {
	service, _ := NewMock(t, Options{})

	_, err := service.ForceStatus(context.Background(), 5, domain.OrderStatus("REFUNDED"))

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_GetOrderNotFound(t *testing.T) {
	service, m := NewMock(t, Options{})
	m.repo.EXPECT().FindByID(gomock.Any(), 9).Return(nil, nil)

	_, err := service.GetOrder(context.Background(), 9)

	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestService_SweepExpired(t *testing.T) {
	service, m := NewMock(t, Options{})
	cutoff := now.Add(-2 * time.Minute)

	gomock.InOrder(
		m.repo.EXPECT().FailExpired(gomock.Any(), cutoff).Return(int64(3), nil),
		m.repo.EXPECT().FailExpired(gomock.Any(), cutoff).Return(int64(0), nil),
	)

	n, err := service.SweepExpired(context.Background(), 2*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = service.SweepExpired(context.Background(), 2*time.Minute)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestService_ListPaidByStore(t *testing.T) {
	service, m := NewMock(t, Options{})
	start := time.Date(2024, 5, 13, 1, 0, 0, 0, time.UTC)
	half := 30 * time.Minute
	filter := domain.PaidOrderFilter{PlayFrom: start.Add(-time.Hour)}

	m.repo.EXPECT().FindPaidByStore(gomock.Any(), "s1", filter).Return([]domain.Order{
		{ID: 1, UserID: "u1", StoreID: "s1", Status: domain.OrderPaid},
		{ID: 2, UserID: "u2", StoreID: "s1", Status: domain.OrderPaid},
	}, nil)
	m.repo.EXPECT().FindDetails(gomock.Any(), []int{1, 2}).Return([]domain.OrderDetail{
		{OrderID: 1, FieldID: 1, StartTime: start, EndTime: start.Add(half), Price: 50},
		{OrderID: 1, FieldID: 1, StartTime: start.Add(half), EndTime: start.Add(2 * half), Price: 50},
		{OrderID: 1, FieldID: 1, StartTime: start.Add(2 * half), EndTime: start.Add(3 * half), Price: 50},
		{OrderID: 2, FieldID: 1, StartTime: start, EndTime: start.Add(half), Price: 50},
		{OrderID: 2, FieldID: 1, StartTime: start.Add(2 * half), EndTime: start.Add(3 * half), Price: 50},
	}, nil)
	m.directory.EXPECT().Store(gomock.Any(), "s1").Return(&directory.Store{ID: "s1", Name: "Arena"})
	m.directory.EXPECT().User(gomock.Any(), "u1").Return(&directory.User{ID: "u1"})
	m.directory.EXPECT().User(gomock.Any(), "u2").Return(nil)

	views, err := service.ListPaidByStore(context.Background(), "s1", filter)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, []DetailRange{{FieldID: 1, StartTime: start, EndTime: start.Add(3 * half), Price: 50}}, views[0].Details)
	assert.Len(t, views[1].Details, 2)
	assert.Equal(t, "Arena", views[0].Store.Name)
	assert.Equal(t, "Arena", views[1].Store.Name)
	assert.NotNil(t, views[0].User)
	assert.Nil(t, views[1].User)
}

func TestService_ListPaidByUserEmpty(t *testing.T) {
	service, m := NewMock(t, Options{})
	m.repo.EXPECT().FindPaidByUser(gomock.Any(), "u1").Return(nil, nil)

	views, err := service.ListPaidByUser(context.Background(), "u1")

	assert.NoError(t, err)
	assert.Nil(t, views)
}

func TestMergeDetailRanges(t *testing.T) {
	start := time.Date(2024, 5, 13, 1, 0, 0, 0, time.UTC)
	half := 30 * time.Minute

	assert.Nil(t, MergeDetailRanges(nil))
	assert.Equal(t, []DetailRange{
		{FieldID: 1, StartTime: start, EndTime: start.Add(half), Price: 50},
		{FieldID: 1, StartTime: start.Add(half), EndTime: start.Add(2 * half), Price: 70},
	}, MergeDetailRanges([]domain.OrderDetail{
		{FieldID: 1, StartTime: start.Add(half), EndTime: start.Add(2 * half), Price: 70},
		{FieldID: 1, StartTime: start, EndTime: start.Add(half), Price: 50},
	}))
}
