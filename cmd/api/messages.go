package main

import "github.com/Mario-Dorado/gestion-sistemas-backend/internal/interfaces/http/handler"

var (
	productMessages = handler.CatalogMessages{
		ListFailed:   "Error al obtener productos.",
		GetFailed:    "Error al obtener producto",
		CreateFailed: "Error al guardar producto",
		UpdateFailed: "Error al actualizar producto",
		DeleteFailed: "Error al eliminar el producto",
		Deleted:      "Producto eliminado correctamente",
	}
	clientMessages = handler.CatalogMessages{
		ListFailed:   "Error al obtener clientes.",
		GetFailed:    "Error al obtener cliente",
		CreateFailed: "Error interno del servidor.",
		UpdateFailed: "Error al actualizar cliente",
		DeleteFailed: "Error al eliminar cliente.",
		Deleted:      "Cliente eliminado correctamente",
	}
	supplierMessages = handler.CatalogMessages{
		ListFailed:   "Error al obtener proveedores",
		GetFailed:    "Error al obtener proveedor",
		CreateFailed: "Error al crear proveedor",
		UpdateFailed: "Error al actualizar proveedor",
		DeleteFailed: "Error al eliminar proveedor",
		Deleted:      "Proveedor eliminado correctamente",
	}
	carrierMessages = handler.CatalogMessages{
		ListFailed:   "Error al obtener transportadoras",
		GetFailed:    "Error al obtener transportadora",
		CreateFailed: "Error al crear transportadora",
		UpdateFailed: "Error al actualizar transportadora",
		DeleteFailed: "Error al eliminar transportadora",
		Deleted:      "Transportadora eliminada correctamente",
	}
	insuranceMessages = handler.CatalogMessages{
		ListFailed:   "Error al obtener seguros",
		GetFailed:    "Error al obtener seguro",
		CreateFailed: "Error al crear seguro",
		UpdateFailed: "Error al actualizar seguro",
		DeleteFailed: "Error al eliminar seguro",
		Deleted:      "Seguro eliminado correctamente",
	}
	borderCostMessages = handler.CatalogMessages{
		ListFailed:   "Error al obtener costos fronterizos",
		GetFailed:    "Error al obtener costo fronterizo",
		CreateFailed: "Error al crear costo fronterizo",
		UpdateFailed: "Error al actualizar costo fronterizo",
		DeleteFailed: "Error al eliminar costo fronterizo",
		Deleted:      "Costo fronterizo eliminado correctamente",
	}
	taxRateMessages = handler.CatalogMessages{
		ListFailed:   "Error al obtener tasas impositivas",
		GetFailed:    "Error al obtener tasa impositiva",
		CreateFailed: "Error al crear tasa impositiva",
		UpdateFailed: "Error al actualizar tasa impositiva",
		DeleteFailed: "Error al eliminar tasa impositiva",
		Deleted:      "Tasa impositiva eliminada correctamente",
	}
)
