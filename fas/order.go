// File: order.go
// Role: component E, Order Assembler — concatenates the left (append)
// accumulator with the right (prepend) accumulator to produce the final
// linear order.
package fas

// assembleOrder builds the final order S_L ++ S_R. sR is collected by
// eliminate in natural drain order (each sink appended as it is found),
// which is the reverse of its logical prepend order, so it is reversed
// here before concatenation.
func assembleOrder(sL, sR []string) []string {
	order := make([]string, 0, len(sL)+len(sR))
	order = append(order, sL...)
	for i := len(sR) - 1; i >= 0; i-- {
		order = append(order, sR[i])
	}

	return order
}
