// Package hexgrid 六边形网格的轴向坐标运算
//
// 坐标系为轴向 (q, r)，第三个立方坐标 s = -q - r 由前两者推出。
package hexgrid

// Coord 轴向坐标
type Coord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// S 隐含的第三个立方坐标
func (c Coord) S() int {
	return -c.Q - c.R
}

// Add 坐标相加
func (c Coord) Add(o Coord) Coord {
	return Coord{Q: c.Q + o.Q, R: c.R + o.R}
}

// Directions 六个相邻方向
var Directions = [6]Coord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbors 六个相邻坐标
func (c Coord) Neighbors() [6]Coord {
	var result [6]Coord
	for i, dir := range Directions {
		result[i] = c.Add(dir)
	}
	return result
}

// Distance 两个坐标之间的六边形距离（立方坐标差的最大绝对值）
func Distance(a, b Coord) int {
	return max(abs(a.Q-b.Q), abs(a.R-b.R), abs(a.S()-b.S()))
}

// InBox 判断 c 是否在以 center 为中心的轴对齐包围盒内：|Δq|<=radius 且 |Δr|<=radius
func InBox(center, c Coord, radius int) bool {
	return abs(c.Q-center.Q) <= radius && abs(c.R-center.R) <= radius
}

// Within 判断 c 与 center 的六边形距离是否不超过 radius
func Within(center, c Coord, radius int) bool {
	return Distance(center, c) <= radius
}

// Range 返回距 center 不超过 radius 的全部坐标，共 3r(r+1)+1 个
func Range(center Coord, radius int) []Coord {
	if radius < 0 {
		return nil
	}
	result := make([]Coord, 0, 3*radius*(radius+1)+1)
	for dq := -radius; dq <= radius; dq++ {
		lo := max(-radius, -dq-radius)
		hi := min(radius, -dq+radius)
		for dr := lo; dr <= hi; dr++ {
			result = append(result, Coord{Q: center.Q + dq, R: center.R + dr})
		}
	}
	return result
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
