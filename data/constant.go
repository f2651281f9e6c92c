package data

const (
	DateTimePattern = "2006-01-02 15:04:05"

	RunModeDev     = "dev"
	RunModeTest    = "test"
	RunModeRelease = "release"
)

const (
	//卡号默认长度
	DefaultCardLength = 16
	//cvv默认长度
	DefaultCvvLength = 3
	//BIN最少位数
	MinBinLength = 6
	//单次生成数量范围
	MinQuantity = 1
	MaxQuantity = 100
	//未配置时的默认生成数量
	DefaultQuantity = 10
	//有效期年份上限(当前年份+N)
	MaxExpirationYears = 20
	//随机有效期: 当前年份 + [1, 5]
	MaxExpirationOffset = 5
	//卡号校验最少位数
	MinValidateLength = 13
)
