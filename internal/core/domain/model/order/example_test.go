package order_test

import (
	"fmt"

	"qrave/internal/core/domain/model/kernel"
	"qrave/internal/core/domain/model/order"
)

func ExampleStatus_TransitionTo() {
	next, err := order.Ready.TransitionTo(order.Completed)
	fmt.Println(next, err)

	_, err = order.Completed.TransitionTo(order.Pending)
	fmt.Println(err)
	// Output:
	// COMPLETED <nil>
	// transition is invalid: COMPLETED -> PENDING
}

func ExampleNewOrder() {
	a, _ := order.NewItem(kernel.NewUUID(), "Margherita", 2, kernel.MustMoney(1000))
	b, _ := order.NewItem(kernel.NewUUID(), "Cola", 1, kernel.MustMoney(500))

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), 7, []order.Item{a, b}, "")
	if err != nil {
		panic(err)
	}
	fmt.Println(o.Status(), o.Version(), o.Total())

	_ = o.Accept()
	fmt.Println(o.Status(), o.Version())
	// Output:
	// PENDING 1 25.00
	// PREPARING 2
}
