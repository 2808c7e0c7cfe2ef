package store

// Message título y descripción de un aviso.
type Message struct {
	Title       string
	Description string
}

// Messages avisos por entidad para cada resultado de operación.
type Messages struct {
	ReadError   Message
	CreateError Message
	UpdateError Message
	DeleteError Message
	Created     Message
	Updated     Message
	Deleted     Message
}

func retryLater(what string) string {
	return "There was an error " + what + ". Please try again later."
}

// CustomerMessages avisos del listado de clientes.
var CustomerMessages = Messages{
	ReadError:   Message{"Error Fetching Customer List", retryLater("fetching your customer list")},
	CreateError: Message{"Error While Adding Customer", retryLater("while adding the customer information")},
	UpdateError: Message{"Error Updating Customer", retryLater("updating the customer")},
	DeleteError: Message{"Error deleting customer", retryLater("deleting the selected customer")},
	Created:     Message{Title: "Customer Created Successfully!"},
	Updated:     Message{Title: "Customer Updated Successfully!"},
	Deleted:     Message{Title: "Customer deleted successfully!"},
}

// InventoryMessages avisos del inventario.
var InventoryMessages = Messages{
	ReadError:   Message{"Error fetching Inventory list", retryLater("fetching the Inventory list")},
	CreateError: Message{"Error while adding Inventory data", retryLater("while adding Inventory data")},
	UpdateError: Message{"Error while updating Inventory data", retryLater("while updating Inventory data")},
	DeleteError: Message{"Error deleting item", retryLater("deleting the selected inventory item")},
	Created:     Message{Title: "Item created successfully!"},
	Updated:     Message{Title: "Item updated successfully!"},
	Deleted:     Message{Title: "Item deleted successfully!"},
}

// CreditSaleMessages avisos de las ventas a crédito.
var CreditSaleMessages = Messages{
	ReadError:   Message{"Error fetching credit sales", retryLater("fetching your credit sales")},
	CreateError: Message{"Error while adding credit sale", retryLater("while recording the credit sale")},
	UpdateError: Message{"Error while updating credit sale", retryLater("while updating the credit sale")},
	DeleteError: Message{"Error deleting credit sale", retryLater("deleting the selected credit sale")},
	Created:     Message{Title: "Credit sale recorded successfully!"},
	Updated:     Message{Title: "Credit sale updated successfully!"},
	Deleted:     Message{Title: "Credit sale deleted successfully!"},
}
