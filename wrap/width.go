package wrap

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidWidth 表示由基础宽度与倍率推导出的行宽不可用（为 0 或不是有限数）。
var ErrInvalidWidth = errors.New("wrap: 无效的行宽")

// EffectiveWidth 计算 round(base × multiplier)，结果小于 0 时取 0。
// 结果为 0 时返回 ErrInvalidWidth，避免产生无意义的输出。
func EffectiveWidth(base int, multiplier float64) (int, error) {
	v := float64(base) * multiplier
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %d × %g", ErrInvalidWidth, base, multiplier)
	}
	w := math.Max(math.Round(v), 0)
	if w == 0 {
		return 0, fmt.Errorf("%w: %d × %g 取整后为 0", ErrInvalidWidth, base, multiplier)
	}
	if w > math.MaxInt32 {
		w = math.MaxInt32
	}
	return int(w), nil
}
