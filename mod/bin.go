package mod

type ServiceStatus string

const (
	ServiceStatusWorking    ServiceStatus = "working"
	ServiceStatusNotWorking ServiceStatus = "not_working"
	ServiceStatusUnknown    ServiceStatus = "unknown"
)

type BinService struct {
	Name        string        `json:"name"`
	Status      ServiceStatus `json:"status"`
	LastChecked string        `json:"lastChecked"`
}

// BinRecord is one entry of the read-only BIN reference dataset.
type BinRecord struct {
	Id          string       `json:"id"`
	Bin         string       `json:"bin"`
	Type        CardType     `json:"type"`
	Bank        string       `json:"bank"`
	Country     string       `json:"country"`
	SuccessRate float64      `json:"successRate"` //0-100
	Description string       `json:"description"`
	Services    []BinService `json:"services"`
}

//数据文件格式: { "bins": [...] }
type BinsData struct {
	Bins []BinRecord `json:"bins"`
}
