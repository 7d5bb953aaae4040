package domain

type CollectiveType string

const (
	CollectiveTypeUser         CollectiveType = "USER"
	CollectiveTypeCollective   CollectiveType = "COLLECTIVE"
	CollectiveTypeOrganization CollectiveType = "ORGANIZATION"
)

type OrderStatusType string

const (
	OrderStatusPaid      OrderStatusType = "PAID"
	OrderStatusActive    OrderStatusType = "ACTIVE"
	OrderStatusCancelled OrderStatusType = "CANCELLED"
	OrderStatusError     OrderStatusType = "ERROR"
)

type OrderInterval string

const (
	OrderIntervalOneOff OrderInterval = "ONEOFF"
	OrderIntervalMonth  OrderInterval = "MONTH"
)

type TransactionDirection string

const (
	TransactionCredit TransactionDirection = "CREDIT"
	TransactionDebit  TransactionDirection = "DEBIT"
)

type TransactionKind string

const (
	KindContribution        TransactionKind = "CONTRIBUTION"
	KindExpense             TransactionKind = "EXPENSE"
	KindHostFee             TransactionKind = "HOST_FEE"
	KindPlatformTip         TransactionKind = "PLATFORM_TIP"
	KindPaymentProcessorFee TransactionKind = "PAYMENT_PROCESSOR_FEE"
	KindPayoutProcessorFee  TransactionKind = "PAYOUT_PROCESSOR_FEE"
	KindCardCharge          TransactionKind = "CARD_CHARGE"
)

type ExpenseStatusType string

const (
	ExpenseStatusPending    ExpenseStatusType = "PENDING"
	ExpenseStatusApproved   ExpenseStatusType = "APPROVED"
	ExpenseStatusRejected   ExpenseStatusType = "REJECTED"
	ExpenseStatusScheduled  ExpenseStatusType = "SCHEDULED_FOR_PAYMENT"
	ExpenseStatusProcessing ExpenseStatusType = "PROCESSING"
	ExpenseStatusPaid       ExpenseStatusType = "PAID"
	ExpenseStatusError      ExpenseStatusType = "ERROR"
)

type PayoutMethodType string

const (
	PayoutBankAccount PayoutMethodType = "BANK_ACCOUNT"
	PayoutPayPal      PayoutMethodType = "PAYPAL"
	PayoutOther       PayoutMethodType = "OTHER"
)

type VirtualCardStatusType string

const (
	VirtualCardActive VirtualCardStatusType = "ACTIVE"
	VirtualCardPaused VirtualCardStatusType = "PAUSED"
)

type HostApplicationStatusType string

const (
	HostApplicationPending  HostApplicationStatusType = "PENDING"
	HostApplicationApproved HostApplicationStatusType = "APPROVED"
	HostApplicationRejected HostApplicationStatusType = "REJECTED"
)

type ActivityType string

const (
	ActivityCollectiveCreated   ActivityType = "collective.created"
	ActivityOrderProcessed      ActivityType = "order.processed"
	ActivityOrderCancelled      ActivityType = "order.cancelled"
	ActivityExpenseCreated      ActivityType = "expense.created"
	ActivityExpenseApproved     ActivityType = "expense.approved"
	ActivityExpenseRejected     ActivityType = "expense.rejected"
	ActivityExpensePaid         ActivityType = "expense.paid"
	ActivityHostApplied         ActivityType = "host.application.created"
	ActivityHostApproved        ActivityType = "host.application.approved"
	ActivityHostRejected        ActivityType = "host.application.rejected"
	ActivityVirtualCardAssigned ActivityType = "virtualcard.assigned"
	ActivityVirtualCardCharge   ActivityType = "virtualcard.charge"
	ActivityTransactionRefunded ActivityType = "transaction.refunded"
)
