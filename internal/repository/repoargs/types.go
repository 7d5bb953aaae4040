package repoargs

type RepositoryName string

const (
	UserRepoName            RepositoryName = "user"
	CollectiveRepoName      RepositoryName = "collective"
	OrderRepoName           RepositoryName = "order"
	ExpenseRepoName         RepositoryName = "expense"
	TransactionRepoName     RepositoryName = "transaction"
	VirtualCardRepoName     RepositoryName = "virtual_card"
	HostApplicationRepoName RepositoryName = "host_application"
	ActivityRepoName        RepositoryName = "activity"
)

// BatchExecQueryRow — колбек результата батч-запроса: индекс элемента и ошибка.
type BatchExecQueryRow func(i int, err error)
