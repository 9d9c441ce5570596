package generate

// swTemplate is the handlebars template for the generated worker script.
// String values are pre-quoted JS literals; the template only decides which
// blocks appear.
const swTemplate = `/**
 * Generated by swgen. Do not edit.
 */
{{#if swImport}}importScripts({{{swImport}}});

{{/if}}{{#if importScripts}}importScripts(
  {{{importScripts}}}
);

{{/if}}{{#if cacheID}}workbox.core.setCacheNameDetails({prefix: {{{cacheID}}}{{!}}});

{{/if}}{{#if skipWaiting}}workbox.core.skipWaiting();
{{/if}}{{#if clientsClaim}}workbox.core.clientsClaim();
{{/if}}{{#if cleanupOutdatedCaches}}workbox.precaching.cleanupOutdatedCaches();
{{/if}}
/**
 * The precache manifest is supplied out-of-band via importScripts; the
 * worker only consumes whatever was concatenated onto it.
 */
self.__precacheManifest = [].concat(self.__precacheManifest || []);
workbox.precaching.precacheAndRoute(self.__precacheManifest, {});
{{#if navigateFallback}}
workbox.routing.registerNavigationRoute({{{navigateFallback}}});
{{/if}}{{#if offlineAnalytics}}
workbox.googleAnalytics.initialize();
{{/if}}`
