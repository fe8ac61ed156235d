package kernel_test

import (
	"fmt"

	"qrave/internal/core/domain/model/kernel"
)

func ExampleMoney_Multiply() {
	subtotal, _ := kernel.MustMoney(1050).Multiply(3)
	total, _ := subtotal.Add(kernel.MustMoney(500))
	fmt.Println(subtotal, total)
	// Output: 31.50 36.50
}
