package picasso

// SplitDaysIntoPages 把天分到若干页，使每页天数尽量接近。
//
// 页数 = ceil(n/maxDaysPerPage)，前 n mod 页数 页各多一天。
// 原有顺序保持不变，页与页之间没有重叠也没有遗漏。n 为 0 时返回空列表。
func SplitDaysIntoPages[T any](days []T, maxDaysPerPage int) [][]T {
	numberOfDays := len(days)
	if numberOfDays == 0 || maxDaysPerPage <= 0 {
		return [][]T{}
	}

	numberOfPages := (numberOfDays + maxDaysPerPage - 1) / maxDaysPerPage
	daysPerPage := numberOfDays / numberOfPages
	numLargerPages := numberOfDays % numberOfPages

	pages := make([][]T, 0, numberOfPages)
	next := 0
	for i := 0; i < numberOfPages; i++ {
		size := daysPerPage
		if i < numLargerPages {
			size++
		}
		page := make([]T, size)
		copy(page, days[next:next+size])
		pages = append(pages, page)
		next += size
	}
	return pages
}
