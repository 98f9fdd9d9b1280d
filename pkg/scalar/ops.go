package scalar

import (
	"fmt"
	"math/big"

	"github.com/leapstack-labs/codata/pkg/uncert"
)

// workPrec is the precision an operation over a and b runs at: the
// widest arbitrary precision among the operands, or FixedPrec when
// neither is arbitrary.
func workPrec(a, b Value) uint {
	bits := FixedPrec
	if a.Kind().Arbitrary() && a.Prec() > bits {
		bits = a.Prec()
	}
	if b.Kind().Arbitrary() && b.Prec() > bits {
		bits = b.Prec()
	}
	return bits
}

func asMeasured(v Value) measuredVal {
	switch t := v.(type) {
	case fixedVal:
		return measuredVal{val: float64(t)}
	case measuredVal:
		return t
	}
	panic(fmt.Sprintf("scalar: cannot view %s as measured", v.Kind()))
}

func asBigMeasured(v Value, bits uint) bigMeasuredVal {
	switch t := v.(type) {
	case fixedVal:
		return bigMeasuredVal{val: new(big.Float).SetPrec(bits).SetFloat64(float64(t))}
	case bigVal:
		return bigMeasuredVal{val: new(big.Float).SetPrec(bits).Set(t.f)}
	case measuredVal:
		out := bigMeasuredVal{val: new(big.Float).SetPrec(bits).SetFloat64(t.val)}
		if len(t.grad) > 0 {
			out.grad = make(map[uncert.Source]*big.Float, len(t.grad))
			for s, g := range t.grad {
				out.grad[s] = new(big.Float).SetPrec(bits).SetFloat64(g)
			}
		}
		return out
	case bigMeasuredVal:
		return t
	}
	panic(fmt.Sprintf("scalar: unknown value type %T", v))
}

// mergeGrad combines two gradients linearly: out[s] = ca*ga[s] + cb*gb[s].
// Entries that cancel to exactly zero are pruned, so correlated terms
// subtract to a gradient-free result.
func mergeGrad(ga, gb map[uncert.Source]float64, ca, cb float64) map[uncert.Source]float64 {
	out := make(map[uncert.Source]float64, len(ga)+len(gb))
	for s, g := range ga {
		v := ca * g
		if h, ok := gb[s]; ok {
			v += cb * h
		}
		if v != 0 {
			out[s] = v
		}
	}
	for s, h := range gb {
		if _, ok := ga[s]; ok {
			continue
		}
		if v := cb * h; v != 0 {
			out[s] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func mergeGradBig(bits uint, ga, gb map[uncert.Source]*big.Float, ca, cb *big.Float) map[uncert.Source]*big.Float {
	out := make(map[uncert.Source]*big.Float, len(ga)+len(gb))
	for s, g := range ga {
		v := new(big.Float).SetPrec(bits).Mul(ca, g)
		if h, ok := gb[s]; ok {
			v.Add(v, new(big.Float).SetPrec(bits).Mul(cb, h))
		}
		if v.Sign() != 0 {
			out[s] = v
		}
	}
	for s, h := range gb {
		if _, ok := ga[s]; ok {
			continue
		}
		v := new(big.Float).SetPrec(bits).Mul(cb, h)
		if v.Sign() != 0 {
			out[s] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Add returns a+b at the join of the operand kinds.
func Add(a, b Value) Value {
	switch a.Kind().Join(b.Kind()) {
	case KindFixed:
		return Float(a.Float64() + b.Float64())
	case KindBig:
		bits := workPrec(a, b)
		return bigVal{f: new(big.Float).SetPrec(bits).Add(ToBig(a, bits), ToBig(b, bits))}
	case KindMeasured:
		x, y := asMeasured(a), asMeasured(b)
		return measuredVal{val: x.val + y.val, grad: mergeGrad(x.grad, y.grad, 1, 1)}
	default:
		bits := workPrec(a, b)
		x, y := asBigMeasured(a, bits), asBigMeasured(b, bits)
		one := new(big.Float).SetPrec(bits).SetInt64(1)
		return bigMeasuredVal{
			val:  new(big.Float).SetPrec(bits).Add(x.val, y.val),
			grad: mergeGradBig(bits, x.grad, y.grad, one, one),
		}
	}
}

// Sub returns a-b at the join of the operand kinds. Subtracting two
// measurements of the same source cancels their gradients exactly.
func Sub(a, b Value) Value {
	switch a.Kind().Join(b.Kind()) {
	case KindFixed:
		return Float(a.Float64() - b.Float64())
	case KindBig:
		bits := workPrec(a, b)
		return bigVal{f: new(big.Float).SetPrec(bits).Sub(ToBig(a, bits), ToBig(b, bits))}
	case KindMeasured:
		x, y := asMeasured(a), asMeasured(b)
		return measuredVal{val: x.val - y.val, grad: mergeGrad(x.grad, y.grad, 1, -1)}
	default:
		bits := workPrec(a, b)
		x, y := asBigMeasured(a, bits), asBigMeasured(b, bits)
		one := new(big.Float).SetPrec(bits).SetInt64(1)
		minusOne := new(big.Float).SetPrec(bits).SetInt64(-1)
		return bigMeasuredVal{
			val:  new(big.Float).SetPrec(bits).Sub(x.val, y.val),
			grad: mergeGradBig(bits, x.grad, y.grad, one, minusOne),
		}
	}
}

// Mul returns a*b at the join of the operand kinds. Gradients follow
// the product rule: d(xy) = y dx + x dy.
func Mul(a, b Value) Value {
	switch a.Kind().Join(b.Kind()) {
	case KindFixed:
		return Float(a.Float64() * b.Float64())
	case KindBig:
		bits := workPrec(a, b)
		return bigVal{f: new(big.Float).SetPrec(bits).Mul(ToBig(a, bits), ToBig(b, bits))}
	case KindMeasured:
		x, y := asMeasured(a), asMeasured(b)
		return measuredVal{val: x.val * y.val, grad: mergeGrad(x.grad, y.grad, y.val, x.val)}
	default:
		bits := workPrec(a, b)
		x, y := asBigMeasured(a, bits), asBigMeasured(b, bits)
		return bigMeasuredVal{
			val:  new(big.Float).SetPrec(bits).Mul(x.val, y.val),
			grad: mergeGradBig(bits, x.grad, y.grad, y.val, x.val),
		}
	}
}

// Div returns a/b at the join of the operand kinds. Gradients follow
// the quotient rule; dividing a measurement by itself yields exactly 1
// with an empty gradient.
func Div(a, b Value) Value {
	switch a.Kind().Join(b.Kind()) {
	case KindFixed:
		return Float(a.Float64() / b.Float64())
	case KindBig:
		bits := workPrec(a, b)
		return bigVal{f: new(big.Float).SetPrec(bits).Quo(ToBig(a, bits), ToBig(b, bits))}
	case KindMeasured:
		x, y := asMeasured(a), asMeasured(b)
		q := x.val / y.val
		inv := 1 / y.val
		return measuredVal{val: q, grad: mergeGrad(x.grad, y.grad, inv, -q*inv)}
	default:
		bits := workPrec(a, b)
		x, y := asBigMeasured(a, bits), asBigMeasured(b, bits)
		q := new(big.Float).SetPrec(bits).Quo(x.val, y.val)
		inv := new(big.Float).SetPrec(bits).Quo(new(big.Float).SetPrec(bits).SetInt64(1), y.val)
		negQInv := new(big.Float).SetPrec(bits).Mul(q, inv)
		negQInv.Neg(negQInv)
		return bigMeasuredVal{val: q, grad: mergeGradBig(bits, x.grad, y.grad, inv, negQInv)}
	}
}

// Neg returns -a in a's own kind.
func Neg(a Value) Value {
	switch t := a.(type) {
	case fixedVal:
		return Float(-float64(t))
	case bigVal:
		return bigVal{f: new(big.Float).Neg(t.f)}
	case measuredVal:
		out := measuredVal{val: -t.val}
		if len(t.grad) > 0 {
			out.grad = make(map[uncert.Source]float64, len(t.grad))
			for s, g := range t.grad {
				out.grad[s] = -g
			}
		}
		return out
	case bigMeasuredVal:
		out := bigMeasuredVal{val: new(big.Float).Neg(t.val)}
		if len(t.grad) > 0 {
			out.grad = make(map[uncert.Source]*big.Float, len(t.grad))
			for s, g := range t.grad {
				out.grad[s] = new(big.Float).Neg(g)
			}
		}
		return out
	}
	panic(fmt.Sprintf("scalar: unknown value type %T", a))
}

// Cmp compares the central values of a and b: -1 if a<b, 0 if equal,
// +1 if a>b. The comparison runs at the joined precision.
func Cmp(a, b Value) int {
	if a.Kind().Join(b.Kind()).Arbitrary() {
		bits := workPrec(a, b)
		return ToBig(a, bits).Cmp(ToBig(b, bits))
	}
	x, y := a.Float64(), b.Float64()
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}
