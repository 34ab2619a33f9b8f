package services

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/entity"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/apperr"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/pkg/mailer"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/repository"
	"github.com/Dev-NelsonQUAN/Show-Royal-Meal-BE/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type orderFixture struct {
	db     *gorm.DB
	svc    *OrderService
	mail   *fakeNotifier
	events *fakePublisher
	buyer  *entity.User
}

func newOrderFixture(t *testing.T) *orderFixture {
	db := testutil.NewDB(t)
	f := &orderFixture{db: db, mail: &fakeNotifier{}, events: &fakePublisher{}}
	f.svc = NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewSequenceRepository(db),
		repository.NewUserRepository(db),
		mailer.NewComposer(mailer.DefaultBrand()),
		f.mail, f.events)
	f.buyer = seedUser(t, db, entity.User{FullName: "Ada Obi", Email: "ada@example.com", PhoneNumber: "0801"})
	return f
}

func cashOrder(items ...OrderItemIn) CreateOrderInput {
	return CreateOrderInput{
		Items:      items,
		Payment:    PaymentIn{Method: "Payment", Detail: "Cash"},
		PickUpDate: "Morning",
	}
}

func TestCreateOrderPricesFromCatalog(t *testing.T) {
	f := newOrderFixture(t)
	p1 := seedProduct(t, f.db, "jollof", "10.00")

	order, err := f.svc.Create(context.Background(), f.buyer.ID, cashOrder(OrderItemIn{ProductID: p1.ID, Qty: 2}))
	require.NoError(t, err)

	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("20.00")), order.TotalAmount.String())
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Equal(t, entity.PaymentUnpaid, order.Payment.Status)
	assert.EqualValues(t, 1000, order.OrderNumber)

	sent := f.mail.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, []string{"ada@example.com"}, sent[0].To)
	assert.Contains(t, sent[0].Subject, "ORD-1000")

	events := f.events.all()
	require.Len(t, events, 1)
	assert.Equal(t, entity.ActivityOrder, events[0].Type)

	// a later price change must not touch the stored order
	require.NoError(t, f.db.Model(&entity.Product{}).Where("id = ?", p1.ID).
		Update("price", decimal.RequireFromString("15.00")).Error)

	var stored entity.Order
	require.NoError(t, f.db.Preload("Items").First(&stored, order.ID).Error)
	assert.True(t, stored.TotalAmount.Equal(decimal.RequireFromString("20")))
	require.Len(t, stored.Items, 1)
	assert.True(t, stored.Items[0].UnitPrice.Equal(decimal.RequireFromString("10")))
}

func TestCreateOrderSumsMultipleItems(t *testing.T) {
	f := newOrderFixture(t)
	a := seedProduct(t, f.db, "suya", "2.50")
	b := seedProduct(t, f.db, "chapman", "1.25")

	order, err := f.svc.Create(context.Background(), f.buyer.ID,
		cashOrder(OrderItemIn{ProductID: a.ID, Qty: 3}, OrderItemIn{ProductID: b.ID, Qty: 4}))
	require.NoError(t, err)
	assert.Equal(t, "12.50", order.TotalAmount.StringFixed(2))
}

func TestCreateOrderValidation(t *testing.T) {
	f := newOrderFixture(t)
	p := seedProduct(t, f.db, "moimoi", "4.00")
	ctx := context.Background()
	item := OrderItemIn{ProductID: p.ID, Qty: 1}

	_, err := f.svc.Create(ctx, f.buyer.ID, cashOrder())
	requireKind(t, err, apperr.KindValidation)
	assert.Equal(t, "No order items", apperr.Message(err))

	in := cashOrder(item)
	in.Payment = PaymentIn{Method: "Payment"}
	_, err = f.svc.Create(ctx, f.buyer.ID, in)
	requireKind(t, err, apperr.KindValidation)

	in.Payment = PaymentIn{}
	_, err = f.svc.Create(ctx, f.buyer.ID, in)
	requireKind(t, err, apperr.KindValidation)

	in = cashOrder(item)
	in.PickUpDate = "Midnight"
	_, err = f.svc.Create(ctx, f.buyer.ID, in)
	requireKind(t, err, apperr.KindValidation)

	_, err = f.svc.Create(ctx, f.buyer.ID, cashOrder(OrderItemIn{ProductID: p.ID, Qty: 0}))
	requireKind(t, err, apperr.KindValidation)
	assert.Equal(t, "Quantity must be one or more", apperr.Message(err))

	_, err = f.svc.Create(ctx, f.buyer.ID, cashOrder(item, OrderItemIn{ProductID: 999, Qty: 1}))
	requireKind(t, err, apperr.KindNotFound)
	assert.Equal(t, "Product not found : 999", apperr.Message(err))

	var count int64
	require.NoError(t, f.db.Model(&entity.Order{}).Count(&count).Error)
	assert.Zero(t, count)
	assert.Empty(t, f.mail.sent())

	// failed attempts rolled back the counter too
	order, err := f.svc.Create(ctx, f.buyer.ID, cashOrder(item))
	require.NoError(t, err)
	assert.EqualValues(t, 1000, order.OrderNumber)
}

func TestCreateOrderOnCredit(t *testing.T) {
	f := newOrderFixture(t)
	p := seedProduct(t, f.db, "puffpuff", "1.00")

	in := cashOrder(OrderItemIn{ProductID: p.ID, Qty: 1})
	in.Payment = PaymentIn{Method: "Credit"}
	order, err := f.svc.Create(context.Background(), f.buyer.ID, in)
	require.NoError(t, err)
	assert.Equal(t, entity.MethodCredit, order.Payment.Method)
	assert.Nil(t, order.Payment.Detail)
}

func TestCreateOrderMailFailureDoesNotFailOrder(t *testing.T) {
	f := newOrderFixture(t)
	f.mail.err = errQueue
	p := seedProduct(t, f.db, "akara", "3.00")

	_, err := f.svc.Create(context.Background(), f.buyer.ID, cashOrder(OrderItemIn{ProductID: p.ID, Qty: 1}))
	require.NoError(t, err)
}

func TestConcurrentOrderNumbersAreDistinctAndIncreasing(t *testing.T) {
	f := newOrderFixture(t)
	p := seedProduct(t, f.db, "amala", "5.00")

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Create(context.Background(), f.buyer.ID, cashOrder(OrderItemIn{ProductID: p.ID, Qty: 1}))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	var orders []entity.Order
	require.NoError(t, f.db.Order("id").Find(&orders).Error)
	require.Len(t, orders, n)

	seen := map[int64]bool{}
	for i, o := range orders {
		assert.False(t, seen[o.OrderNumber], "duplicate %d", o.OrderNumber)
		seen[o.OrderNumber] = true
		if i > 0 {
			assert.Greater(t, o.OrderNumber, orders[i-1].OrderNumber)
		}
	}

	nums := make([]int, 0, n)
	for num := range seen {
		nums = append(nums, int(num))
	}
	sort.Ints(nums)
	assert.Equal(t, 1000, nums[0])
	assert.Equal(t, 1000+n-1, nums[n-1])
}

func TestUpdateStatus(t *testing.T) {
	f := newOrderFixture(t)
	p := seedProduct(t, f.db, "efo", "6.00")
	ctx := context.Background()

	order, err := f.svc.Create(ctx, f.buyer.ID, cashOrder(OrderItemIn{ProductID: p.ID, Qty: 1}))
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(ctx, order.ID, "shipped")
	requireKind(t, err, apperr.KindValidation)

	_, err = f.svc.UpdateStatus(ctx, 4242, "Ready")
	requireKind(t, err, apperr.KindNotFound)

	var stored entity.Order
	require.NoError(t, f.db.First(&stored, order.ID).Error)
	assert.Equal(t, entity.OrderPending, stored.Status)
	require.Len(t, f.mail.sent(), 1, "only the confirmation mail so far")

	updated, err := f.svc.UpdateStatus(ctx, order.ID, "Ready")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderReady, updated.Status)

	sent := f.mail.sent()
	require.Len(t, sent, 2)
	assert.Contains(t, sent[1].Subject, "Ready")

	// no transition table: going back is allowed
	back, err := f.svc.UpdateStatus(ctx, order.ID, "Pending")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderPending, back.Status)
}

func TestListResolvesBuyerAndDeletedProducts(t *testing.T) {
	f := newOrderFixture(t)
	p := seedProduct(t, f.db, "ofada", "8.00")
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.buyer.ID, cashOrder(OrderItemIn{ProductID: p.ID, Qty: 1}))
	require.NoError(t, err)
	second, err := f.svc.Create(ctx, f.buyer.ID, cashOrder(OrderItemIn{ProductID: p.ID, Qty: 2}))
	require.NoError(t, err)

	require.NoError(t, f.db.Delete(&entity.Product{}, p.ID).Error)

	list, err := f.svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.OrderNumber, list[0].OrderNumber, "newest first")
	require.NotNil(t, list[0].Buyer)
	assert.Equal(t, "ada@example.com", list[0].Buyer.Email)
	require.Len(t, list[0].Items, 1)
	require.NotNil(t, list[0].Items[0].Product)
	assert.Equal(t, "ofada", list[0].Items[0].Product.ProductName)

	mine, err := f.svc.ListForUser(ctx, f.buyer.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	other, err := f.svc.ListForUser(ctx, f.buyer.ID+100)
	require.NoError(t, err)
	assert.Empty(t, other)
}
