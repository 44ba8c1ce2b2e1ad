package nutrition

import (
	"math"
)

// Facts 每份營養值。Per100 欄位時以 100 單位（g 或 ml）為基準。
type Facts struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Scale 依實際份量換算營養值：卡路里取整數，巨量營養素取一位小數
func Scale(per100 Facts, portion float64) Facts {
	multiplier := portion / 100
	return Facts{
		Calories: math.Round(per100.Calories * multiplier),
		Protein:  round1(per100.Protein * multiplier),
		Carbs:    round1(per100.Carbs * multiplier),
		Fat:      round1(per100.Fat * multiplier),
	}
}

// Sum 逐項相加。輸入值已各自四捨五入，巨量營養素在每次相加後
// 重新取一位小數，避免浮點累積誤差；卡路里相加後仍為整數。
func Sum(parts []Facts) Facts {
	var total Facts
	for _, p := range parts {
		total.Calories += p.Calories
		total.Protein = round1(total.Protein + p.Protein)
		total.Carbs = round1(total.Carbs + p.Carbs)
		total.Fat = round1(total.Fat + p.Fat)
	}
	return total
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
