package wrap

import (
	"github.com/ByLCY/tagwrap/linebreak"
	"github.com/ByLCY/tagwrap/measure"
)

// Options 配置折行所需的依赖，零值即为默认行为。
type Options struct {
	Measurer  measure.Measurer    // 宽度度量，nil 时按等宽字符计算（measure.Monospace）
	Algorithm linebreak.Algorithm // 分行算法，nil 时使用 linebreak.OptimalFit
}

func (o Options) measurer() measure.Measurer {
	if o.Measurer == nil {
		return measure.Monospace{}
	}
	return o.Measurer
}

func (o Options) algorithm() linebreak.Algorithm {
	if o.Algorithm == nil {
		return linebreak.OptimalFit{}
	}
	return o.Algorithm
}

// AlgorithmByName 将命令行中的算法名映射为实现：optimal（默认）、knuth、greedy。
func AlgorithmByName(name string) (linebreak.Algorithm, bool) {
	switch name {
	case "", "optimal", "optimal-fit":
		return linebreak.OptimalFit{}, true
	case "knuth", "knuth-plass":
		return linebreak.Knuth{}, true
	case "greedy", "first-fit":
		return linebreak.Greedy{}, true
	}
	return nil, false
}
