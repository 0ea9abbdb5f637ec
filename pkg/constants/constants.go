package constants

const (
	API_PREFIX             = "/api/contatos" // 联系人资源路由前缀
	ROOT_MESSAGE           = "API Contatos"  // 根路径返回的提示信息
	CONTACT_CACHE_PREFIX   = "contato:"      // 联系人缓存 key 前缀
	REQUEST_ID_HEADER      = "X-Request-ID"  // 请求 ID 响应头
	SHUTDOWN_TIMEOUT       = 10              // 优雅关闭超时（秒）
	EVENT_WORKER_NUM       = 4               // 事件发布 Worker 数量
	EVENT_WORKER_BUFFER    = 256             // 事件发布通道缓冲区大小
	SQLITE_MAX_OPEN_CONNS  = 1               // SQLite 最大连接数，事务在引擎内串行
	DEFAULT_CACHE_TTL_SECS = 300             // 联系人缓存默认有效期（秒）
)
