// Package shipment models the display records of shipments in flight: the rows
// of the active-shipments list, the delivery timeline of the shipment details
// page and the fulfillment timeline of the order status page.
//
// Nothing here tracks a real shipment. Views and tracks are built from static
// content and exist only for rendering.
package shipment
